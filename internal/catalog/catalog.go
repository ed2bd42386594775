// Package catalog holds the immutable template registry. Descriptors are
// parsed once from the embedded builtin definitions; every conflict that
// could make classification ambiguous at request time is rejected at load
// time instead. After a successful load the catalog is read-only, so any
// number of concurrent requests may share it without locking.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinDefinitions []byte

// Catalog is a read-only registry of template descriptors ordered by
// declared priority.
type Catalog struct {
	descriptors []*models.TemplateDescriptor
	byID        map[string]*models.TemplateDescriptor
}

type definitionFile struct {
	Templates []*models.TemplateDescriptor `yaml:"templates"`
}

// Load builds the catalog from the embedded builtin definitions. A failure
// here is fatal: the process must not serve requests with a partial catalog.
func Load() (*Catalog, error) {
	var defs definitionFile
	if err := yaml.Unmarshal(builtinDefinitions, &defs); err != nil {
		return nil, errors.CatalogLoadError(fmt.Sprintf("parsing builtin definitions: %v", err))
	}
	return New(defs.Templates)
}

// New validates a descriptor set and builds a catalog from it. Descriptors
// are sorted by ascending priority; declaration order breaks priority ties
// for listing purposes, but keyword overlap at equal priority is an error.
func New(descriptors []*models.TemplateDescriptor) (*Catalog, error) {
	if len(descriptors) == 0 {
		return nil, errors.CatalogLoadError("no template descriptors defined")
	}

	byID := make(map[string]*models.TemplateDescriptor, len(descriptors))
	for _, d := range descriptors {
		if err := validateDescriptor(d); err != nil {
			return nil, err
		}
		if _, exists := byID[d.ID]; exists {
			return nil, errors.CatalogLoadError(fmt.Sprintf("duplicate template id %q", d.ID))
		}
		byID[d.ID] = d
	}

	if err := checkKeywordOverlap(descriptors); err != nil {
		return nil, err
	}

	ordered := make([]*models.TemplateDescriptor, len(descriptors))
	copy(ordered, descriptors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	return &Catalog{descriptors: ordered, byID: byID}, nil
}

func validateDescriptor(d *models.TemplateDescriptor) error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.CatalogLoadError("template descriptor with empty id")
	}
	if !models.IsValidCategory(string(d.Category)) {
		return errors.CatalogLoadError(fmt.Sprintf("template %q has unknown category %q", d.ID, d.Category))
	}
	if len(d.Sections) == 0 {
		return errors.CatalogLoadError(fmt.Sprintf("template %q has no sections", d.ID))
	}
	if len(d.MatchKeywords) == 0 {
		return errors.CatalogLoadError(fmt.Sprintf("template %q has no match keywords", d.ID))
	}

	seen := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		key := strings.TrimSpace(s.PlaceholderKey)
		if key == "" {
			return errors.CatalogLoadError(fmt.Sprintf("template %q has a section with an empty placeholder key", d.ID))
		}
		if seen[key] {
			return errors.CatalogLoadError(fmt.Sprintf("template %q declares placeholder key %q twice", d.ID, key))
		}
		seen[key] = true
	}
	return nil
}

// checkKeywordOverlap rejects descriptor pairs that share a keyword at the
// same priority. Such a pair would tie at identical match scores with no
// declared winner; the ambiguity must be resolved in the definitions, not
// guessed at request time.
func checkKeywordOverlap(descriptors []*models.TemplateDescriptor) error {
	type owner struct {
		id       string
		priority int
	}
	owners := make(map[string][]owner)
	for _, d := range descriptors {
		for _, kw := range d.MatchKeywords {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			owners[normalized] = append(owners[normalized], owner{id: d.ID, priority: d.Priority})
		}
	}

	for kw, list := range owners {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if list[i].priority == list[j].priority {
					return errors.CatalogLoadError(fmt.Sprintf(
						"templates %q and %q share keyword %q at equal priority %d",
						list[i].id, list[j].id, kw, list[i].priority))
				}
			}
		}
	}
	return nil
}

// Lookup returns the descriptor with the given id.
func (c *Catalog) Lookup(id string) (*models.TemplateDescriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, errors.TemplateNotFoundError(id)
	}
	return d, nil
}

// ListByCategory returns the descriptors of a category in priority order.
func (c *Catalog) ListByCategory(cat models.Category) []*models.TemplateDescriptor {
	var out []*models.TemplateDescriptor
	for _, d := range c.descriptors {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Descriptors returns all descriptors in priority order. The returned slice
// is a copy; the descriptors themselves are shared and must not be mutated.
func (c *Catalog) Descriptors() []*models.TemplateDescriptor {
	out := make([]*models.TemplateDescriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// Len returns the number of registered descriptors.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}
