package models

// TemplateDescriptor is the static definition of one fillable document kind.
// Descriptors are created at catalog load time and never mutated afterward;
// every request shares the same read-only instances.
type TemplateDescriptor struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Category    Category `yaml:"category"`

	// Priority breaks ties between descriptors whose keywords overlap or
	// whose match scores are equal. Lower values win. Builtin descriptors
	// all carry distinct priorities so overlap is always resolvable.
	Priority int `yaml:"priority"`

	// MatchKeywords are the trigger phrases the classifier scans for in a
	// request. Order is significant only for display; tie-breaking is by
	// Priority, never by keyword or input order.
	MatchKeywords []string `yaml:"match_keywords"`

	Sections []SectionSpec `yaml:"sections"`
}

// SectionSpec is a named slot in a template awaiting caller-supplied content.
type SectionSpec struct {
	Heading        string `yaml:"heading"`
	PlaceholderKey string `yaml:"key"`
	Required       bool   `yaml:"required"`
	Hint           string `yaml:"hint,omitempty"`
}

// RequiredKeys returns the placeholder keys of required sections in
// declaration order.
func (t *TemplateDescriptor) RequiredKeys() []string {
	var keys []string
	for _, s := range t.Sections {
		if s.Required {
			keys = append(keys, s.PlaceholderKey)
		}
	}
	return keys
}

// OptionalKeys returns the placeholder keys of optional sections in
// declaration order.
func (t *TemplateDescriptor) OptionalKeys() []string {
	var keys []string
	for _, s := range t.Sections {
		if !s.Required {
			keys = append(keys, s.PlaceholderKey)
		}
	}
	return keys
}
