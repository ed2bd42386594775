// Package renderer merges caller-supplied field values into a template's
// placeholders. Rendering is deterministic and idempotent: identical
// (templateID, fieldValues) inputs always produce byte-identical documents,
// and no formatting state carries between calls.
package renderer

import (
	"encoding/json"
	"strings"

	"github.com/dpshade/draftsmith/internal/catalog"
	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

// Renderer fills catalog templates into structured documents.
type Renderer struct {
	catalog *catalog.Catalog
}

// New creates a renderer over the given catalog.
func New(cat *catalog.Catalog) *Renderer {
	return &Renderer{catalog: cat}
}

// Render fills the template's sections from fieldValues. A required section
// with a missing or blank value fails with MissingRequiredFieldError naming
// the first such key in section order; partial documents are never produced
// silently. Optional unfilled sections are emitted with a placeholder marker
// so the scorer can see the gap. Keys the template does not declare are
// ignored.
func (r *Renderer) Render(templateID string, fieldValues map[string]string) (*models.RenderedDocument, error) {
	desc, err := r.catalog.Lookup(templateID)
	if err != nil {
		return nil, err
	}

	doc := &models.RenderedDocument{
		TemplateID: desc.ID,
		Category:   desc.Category,
		Title:      desc.Name,
		Sections:   make([]models.RenderedSection, 0, len(desc.Sections)),
	}

	for _, spec := range desc.Sections {
		content := strings.TrimSpace(fieldValues[spec.PlaceholderKey])
		if content == "" {
			if spec.Required {
				return nil, errors.MissingRequiredFieldError(spec.PlaceholderKey)
			}
			doc.Sections = append(doc.Sections, models.RenderedSection{
				Heading:  spec.Heading,
				Key:      spec.PlaceholderKey,
				Content:  models.PlaceholderMarker(spec.PlaceholderKey),
				Filled:   false,
				Required: false,
			})
			continue
		}
		doc.Sections = append(doc.Sections, models.RenderedSection{
			Heading:  spec.Heading,
			Key:      spec.PlaceholderKey,
			Content:  content,
			Filled:   true,
			Required: spec.Required,
		})
	}

	return doc, nil
}

// Markdown assembles the document as a markdown string: title heading, then
// one second-level heading per section in template order.
func Markdown(doc *models.RenderedDocument) string {
	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n")
	for _, s := range doc.Sections {
		b.WriteString("\n## " + s.Heading + "\n\n")
		b.WriteString(s.Content + "\n")
	}
	return b.String()
}

// JSON marshals the document for machine consumers.
func JSON(doc *models.RenderedDocument) (string, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal document")
	}
	return string(out), nil
}
