package search

import "fmt"

// EntryType is a cosmetic category for a documentation entry.
type EntryType string

const (
	TypeMethod  EntryType = "method"
	TypeConcept EntryType = "concept"
	TypeGuide   EntryType = "guide"
)

var validTypes = map[EntryType]bool{
	TypeMethod:  true,
	TypeConcept: true,
	TypeGuide:   true,
}

// SearchEntry represents a single searchable topic in the documentation.
type SearchEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Section   string    `json:"section"`
	SectionID string    `json:"section_id"`
	Preview   string    `json:"preview"`
	Type      EntryType `json:"type"`
	Keywords  []string  `json:"keywords,omitempty"`
}

func (e SearchEntry) validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry %q: id is required", e.Title)
	}
	if e.Title == "" {
		return fmt.Errorf("entry %s: title is required", e.ID)
	}
	if e.Type != "" && !validTypes[e.Type] {
		return fmt.Errorf("entry %s: invalid type %q", e.ID, e.Type)
	}
	return nil
}
