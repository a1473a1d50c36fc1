package invoice

import (
	"strings"
	"testing"
)

func TestTaxonomyPrompt_ContainsEveryCategory(t *testing.T) {
	prompt := TaxonomyPrompt()
	for _, c := range Taxonomy {
		if !strings.Contains(prompt, "('"+c.Name+"', '"+c.Items+"')") {
			t.Errorf("prompt missing category %q", c.Name)
		}
	}
	if !strings.HasSuffix(prompt, ";") {
		t.Error("prompt should end with a semicolon")
	}
}

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Groceries & Food", "Groceries & Food", true},
		{"groceries & food", "Groceries & Food", true},
		{"  TAXES  ", "Taxes", true},
		{"Cryptocurrency", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
