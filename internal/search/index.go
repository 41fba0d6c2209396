package search

import (
	"fmt"
	"slices"
	"strings"
)

// MaxResults caps the number of entries returned by Search.
const MaxResults = 8

// Index is an immutable, in-memory catalog of documentation entries.
// It is safe for concurrent use.
type Index struct {
	entries []SearchEntry
	byID    map[string]int
}

// NewIndex builds an index from the given entries. Entries are copied, so later
// changes to the slice do not affect the index. IDs must be unique.
func NewIndex(entries []SearchEntry) (*Index, error) {
	idx := &Index{
		entries: make([]SearchEntry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, dup := idx.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate entry id %q", e.ID)
		}
		e.Keywords = slices.Clone(e.Keywords)
		idx.entries[i] = e
		idx.byID[e.ID] = i
	}
	return idx, nil
}

// MustDefault returns an index over DefaultCatalog.
func MustDefault() *Index {
	idx, err := NewIndex(DefaultCatalog)
	if err != nil {
		panic(err)
	}
	return idx
}

// Len returns the number of entries in the catalog.
func (idx *Index) Len() int { return len(idx.entries) }

// Entries returns a copy of the catalog in its original order.
func (idx *Index) Entries() []SearchEntry {
	return slices.Clone(idx.entries)
}

// Lookup returns the entry with the given id.
func (idx *Index) Lookup(id string) (SearchEntry, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return SearchEntry{}, false
	}
	return idx.entries[i], true
}

// Sections returns the distinct section names in catalog order.
func (idx *Index) Sections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, e := range idx.entries {
		if !seen[e.Section] {
			seen[e.Section] = true
			sections = append(sections, e.Section)
		}
	}
	return sections
}

// Search returns at most MaxResults entries whose title, preview, section or
// any keyword contains query, case-insensitively. The query is matched as a
// literal substring. Results are ordered by exact title match, then title
// prefix match, then exact keyword match; ties keep catalog order.
func (idx *Index) Search(query string) []SearchEntry {
	if query == "" {
		return nil
	}
	term := strings.ToLower(query)

	var matches []scored
	for _, e := range idx.entries {
		if !matchesTerm(e, term) {
			continue
		}
		matches = append(matches, scoreEntry(e, term))
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.rank - a.rank
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	results := make([]SearchEntry, len(matches))
	for i, m := range matches {
		results[i] = m.entry
	}
	return results
}

type scored struct {
	entry SearchEntry
	rank  int
}

const (
	rankKeywordExact = 1 << iota
	rankTitlePrefix
	rankTitleExact
)

func scoreEntry(e SearchEntry, term string) scored {
	title := strings.ToLower(e.Title)
	rank := 0
	if title == term {
		rank |= rankTitleExact
	}
	if strings.HasPrefix(title, term) {
		rank |= rankTitlePrefix
	}
	for _, kw := range e.Keywords {
		if strings.ToLower(kw) == term {
			rank |= rankKeywordExact
			break
		}
	}
	return scored{entry: e, rank: rank}
}

func matchesTerm(e SearchEntry, term string) bool {
	if strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Preview), term) ||
		strings.Contains(strings.ToLower(e.Section), term) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}
