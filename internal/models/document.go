package models

import "fmt"

// PlaceholderMarker is the text an unfilled optional section carries so the
// scorer can detect incompleteness without re-reading the template.
func PlaceholderMarker(key string) string {
	return fmt.Sprintf("_To be filled: %s_", key)
}

// RenderedSection is one section of a rendered document.
type RenderedSection struct {
	Heading string `json:"heading"`
	Key     string `json:"key"`
	Content string `json:"content"`
	Filled  bool   `json:"filled"`

	// Required mirrors the source section spec so the scorer can evaluate
	// completeness from the document alone.
	Required bool `json:"required"`
}

// RenderedDocument is the immutable output of one render call. Section order
// equals the source descriptor's section order; unfilled optional sections
// are present with a placeholder marker, never omitted.
type RenderedDocument struct {
	TemplateID string            `json:"template_id"`
	Category   Category          `json:"category"`
	Title      string            `json:"title"`
	Sections   []RenderedSection `json:"sections"`
}

// Section returns the section with the given placeholder key.
func (d *RenderedDocument) Section(key string) (RenderedSection, bool) {
	for _, s := range d.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return RenderedSection{}, false
}

// FilledCount returns how many sections carry caller-supplied content.
func (d *RenderedDocument) FilledCount() int {
	n := 0
	for _, s := range d.Sections {
		if s.Filled {
			n++
		}
	}
	return n
}
