package scans_test

import (
	"testing"

	"github.com/jazs69/ai-waste-sorter/internal/scans"
)

func TestNormalizeLabelExact(t *testing.T) {
	tests := []struct {
		label string
		want  scans.Category
	}{
		{"Plastic", scans.CategoryPlastic},
		{"Paper", scans.CategoryPaper},
		{"Cardboard", scans.CategoryCardboard},
		{"Glass", scans.CategoryGlass},
		{"Metal", scans.CategoryMetal},
		{"plastic", scans.CategoryPlastic},
		{"GLASS", scans.CategoryGlass},
		{"  Metal  ", scans.CategoryMetal},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := scans.NormalizeLabel(tt.label); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabelKeyword(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  scans.Category
	}{
		{"sentence", "This looks like a plastic bottle", scans.CategoryPlastic},
		{"parenthetical", "Glass (likely a jar)", scans.CategoryGlass},
		{"mixed case", "Probably METAL can", scans.CategoryMetal},
		{"cardboard before paper", "cardboard (paper-based packaging)", scans.CategoryCardboard},
		{"paper alone", "crumpled paper sheet", scans.CategoryPaper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scans.NormalizeLabel(tt.label); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabelUnknown(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"banana peel",
		"I cannot determine the material",
	}

	for _, label := range tests {
		if got := scans.NormalizeLabel(label); got != scans.CategoryUnknown {
			t.Errorf("NormalizeLabel(%q) = %q, want Unknown", label, got)
		}
	}
}

func TestCategoriesExcludesUnknown(t *testing.T) {
	cats := scans.Categories()
	if len(cats) != 5 {
		t.Fatalf("Categories() returned %d entries, want 5", len(cats))
	}
	for _, c := range cats {
		if c == scans.CategoryUnknown {
			t.Error("Categories() should not include Unknown")
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range scans.Categories() {
		if !scans.ValidCategory(string(c)) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if !scans.ValidCategory("Unknown") {
		t.Error("ValidCategory(Unknown) = false, want true")
	}
	if scans.ValidCategory("plastic") {
		t.Error("ValidCategory is case-sensitive; lowercase should be invalid")
	}
	if scans.ValidCategory("Organic") {
		t.Error("ValidCategory(Organic) = true, want false")
	}
}
