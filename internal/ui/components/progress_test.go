package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBar_WidthAndCount(t *testing.T) {
	bar := ProgressBar{Done: 3, Total: 10, ShowCount: true, Width: 30}
	out := bar.View()

	if got := lipgloss.Width(out); got != 30 {
		t.Errorf("rendered width = %d, want 30", got)
	}
	if !strings.Contains(out, "3/10") {
		t.Errorf("rendered bar missing count: %q", out)
	}
}

func TestProgressBar_ClampsDone(t *testing.T) {
	for _, done := range []int{-2, 0, 10, 25} {
		bar := ProgressBar{Done: done, Total: 10, Width: 20}
		if got := lipgloss.Width(bar.View()); got != 20 {
			t.Errorf("Done=%d: rendered width = %d, want 20", done, got)
		}
	}
}

func TestProgressBar_EmptySetRendersNothing(t *testing.T) {
	bar := ProgressBar{Done: 1, Total: 0, Width: 20}
	if out := bar.View(); out != "" {
		t.Errorf("View() with Total=0 = %q, want empty", out)
	}
}
