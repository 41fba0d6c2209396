package search

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterSections keeps the results whose SectionID matches any of the glob
// patterns (e.g. "api-*" or "{installation,quick-start}"). Ranking order is
// preserved. With no patterns every result is kept.
func FilterSections(results []SearchEntry, patterns ...string) ([]SearchEntry, error) {
	patterns = compact(patterns)
	if len(patterns) == 0 {
		return results, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid section pattern %q", p)
		}
	}

	var out []SearchEntry
	for _, e := range results {
		if matchesAny(e.SectionID, patterns) {
			out = append(out, e)
		}
	}
	return out, nil
}

func matchesAny(sectionID string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, sectionID); err == nil && ok {
			return true
		}
	}
	return false
}

// compact lowercases patterns and drops blanks; section ids are lowercase.
func compact(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
