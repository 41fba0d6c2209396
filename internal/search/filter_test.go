package search

import "testing"

func TestFilterSections(t *testing.T) {
	results := []SearchEntry{
		{ID: "a", SectionID: "installation"},
		{ID: "b", SectionID: "api-reference"},
		{ID: "c", SectionID: "quick-start"},
		{ID: "d", SectionID: "advanced"},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"no patterns", nil, []string{"a", "b", "c", "d"}},
		{"blank pattern", []string{"  "}, []string{"a", "b", "c", "d"}},
		{"exact", []string{"advanced"}, []string{"d"}},
		{"wildcard", []string{"api-*"}, []string{"b"}},
		{"alternation", []string{"{installation,quick-start}"}, []string{"a", "c"}},
		{"case insensitive", []string{"API-*"}, []string{"b"}},
		{"several", []string{"advanced", "inst*"}, []string{"a", "d"}},
		{"no match", []string{"telemetry"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterSections(results, tt.patterns...)
			if err != nil {
				t.Fatalf("FilterSections: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("result %d = %q, want %q", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterSectionsInvalidPattern(t *testing.T) {
	if _, err := FilterSections([]SearchEntry{{ID: "a", SectionID: "x"}}, "[unclosed"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
