package subjects

import "testing"

func TestAll_CanonicalOrder(t *testing.T) {
	want := []string{Math, NaturalScience, SocialStudies, Reading, English}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d subjects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllInfo_MetadataComplete(t *testing.T) {
	for _, info := range AllInfo() {
		if info.DisplayName == "" {
			t.Errorf("%s: empty display name", info.Key)
		}
		if info.Description == "" {
			t.Errorf("%s: empty description", info.Key)
		}
		if info.Color == nil {
			t.Errorf("%s: no accent color", info.Key)
		}
	}
}

func TestLookup_UnknownKeyDegrades(t *testing.T) {
	info := Lookup("filosofia")
	if info.Key != "filosofia" || info.DisplayName != "filosofia" {
		t.Errorf("Lookup(unknown) = %+v, want key echoed", info)
	}
	if info.Color != nil {
		t.Error("Lookup(unknown) should carry no accent color")
	}
}

func TestValid(t *testing.T) {
	if !Valid(Reading) {
		t.Errorf("Valid(%q) = false", Reading)
	}
	if Valid("filosofia") {
		t.Error(`Valid("filosofia") = true`)
	}
}
