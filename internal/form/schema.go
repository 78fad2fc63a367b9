// Package form defines the declarative field schemas that drive the console's
// add/edit modals. A schema describes a form's inputs without knowing any
// entity's shape; the owning service decides how the collected values become
// a backend payload.
package form

import (
	"fmt"
	"strings"
)

// Kind discriminates the input variants a field can render as.
type Kind string

const (
	Text     Kind = "text"
	Number   Kind = "number"
	Email    Kind = "email"
	Password Kind = "password"
	Textarea Kind = "textarea"
	Select   Kind = "select"
	File     Kind = "file"
)

// Option is one choice of a select field.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Field describes a single form input.
type Field struct {
	Label       string   `json:"label"`
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []Option `json:"options,omitempty"`
	// Multiple allows several attachments on a file field.
	Multiple bool `json:"multiple,omitempty"`
	Required bool `json:"required,omitempty"`
}

// Schema is an ordered sequence of fields plus the modal title.
type Schema struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Upload is one raw file attachment collected from a file input.
type Upload struct {
	Filename string
	Content  []byte
}

// Submission carries the raw input a modal collected: plain values keyed by
// field name plus any file attachments. It performs no entity logic itself.
type Submission struct {
	Values map[string]string
	Files  map[string][]Upload
}

// ValidationError reports a submission that cannot be turned into a payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// Validate checks the submission against the schema: required non-file fields
// must carry a non-blank value, required file fields at least one attachment.
func (s Schema) Validate(sub Submission) error {
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if f.Kind == File {
			if len(sub.Files[f.Name]) == 0 {
				return &ValidationError{Field: f.Name, Reason: "attachment is required"}
			}
			continue
		}
		if strings.TrimSpace(sub.Values[f.Name]) == "" {
			return &ValidationError{Field: f.Name, Reason: "value is required"}
		}
	}
	return nil
}

// Prefill returns the initial values for every non-file field, keyed by field
// name. File inputs never pre-fill; a missing initial value stays absent.
func (s Schema) Prefill(initial map[string]string) map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == File {
			continue
		}
		if v, ok := initial[f.Name]; ok {
			values[f.Name] = v
		}
	}
	return values
}

// SplitList converts a comma-separated input ("S, M, L") into a clean
// sequence, dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
