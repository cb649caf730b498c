package subjects

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// The five ICFES subject areas. These keys are fixed by the backend: they
// travel as the materia query parameter and come back verbatim on questions
// and results. Adding a subject means updating this package and nothing else.
const (
	Math           = "matematicas"
	NaturalScience = "ciencias naturales"
	SocialStudies  = "sociales y ciudadanas"
	Reading        = "lectura"
	English        = "ingles"
)

// Info is the display metadata for one subject.
type Info struct {
	Key         string
	DisplayName string
	Description string
	Color       color.Color
}

var all = []Info{
	{
		Key:         Math,
		DisplayName: "Matemáticas",
		Description: "Álgebra, geometría, cálculo y estadística",
		Color:       lipgloss.Color("#3B82F6"),
	},
	{
		Key:         NaturalScience,
		DisplayName: "Ciencias Naturales",
		Description: "Física, química y biología aplicada",
		Color:       lipgloss.Color("#10B981"),
	},
	{
		Key:         SocialStudies,
		DisplayName: "Sociales y Ciudadanas",
		Description: "Historia, geografía y competencias cívicas",
		Color:       lipgloss.Color("#F59E0B"),
	},
	{
		Key:         Reading,
		DisplayName: "Lectura Crítica",
		Description: "Comprensión lectora y análisis textual",
		Color:       lipgloss.Color("#8B5CF6"),
	},
	{
		Key:         English,
		DisplayName: "Inglés",
		Description: "Comprensión y uso del idioma inglés",
		Color:       lipgloss.Color("#6366F1"),
	},
}

// All returns the subject keys in canonical order.
func All() []string {
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.Key
	}
	return keys
}

// AllInfo returns the display metadata in canonical order.
func AllInfo() []Info {
	out := make([]Info, len(all))
	copy(out, all)
	return out
}

// Lookup returns the metadata for a subject key. Unknown keys fall back to
// a bare Info echoing the key, so backend additions degrade gracefully.
func Lookup(key string) Info {
	for _, s := range all {
		if s.Key == key {
			return s
		}
	}
	return Info{Key: key, DisplayName: key}
}

// DisplayName returns the human-readable name for a subject key.
func DisplayName(key string) string {
	return Lookup(key).DisplayName
}

// Valid reports whether key is one of the five known subjects.
func Valid(key string) bool {
	for _, s := range all {
		if s.Key == key {
			return true
		}
	}
	return false
}
