package form

import (
	"strconv"

	"github.com/nihonga/admin-console/pkg/storefront"
)

// JSONPayload shapes a submission into a plain key-value body for entities
// the backend accepts as JSON. Number fields are parsed here, at the form
// boundary; the backend is not assumed to duplicate this validation. File
// fields are ignored and absent values stay absent.
func (s Schema) JSONPayload(sub Submission) (map[string]any, error) {
	payload := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.Kind == File {
			continue
		}
		raw, ok := sub.Values[f.Name]
		if !ok || raw == "" {
			continue
		}
		if f.Kind == Number {
			n, err := parseNumber(f.Name, raw)
			if err != nil {
				return nil, err
			}
			payload[f.Name] = n
			continue
		}
		payload[f.Name] = raw
	}
	return payload, nil
}

// MultipartPayload shapes a submission into a multipart form for entities
// carrying image attachments. Text fields keep schema order; number fields
// are validated before being forwarded in their string form; a single-file
// field takes only the first attachment.
func (s Schema) MultipartPayload(sub Submission) (*storefront.Form, error) {
	payload := storefront.NewForm()
	for _, f := range s.Fields {
		if f.Kind == File {
			uploads := sub.Files[f.Name]
			if !f.Multiple && len(uploads) > 1 {
				uploads = uploads[:1]
			}
			for _, u := range uploads {
				payload.AddFile(f.Name, u.Filename, u.Content)
			}
			continue
		}
		raw, ok := sub.Values[f.Name]
		if !ok || raw == "" {
			continue
		}
		if f.Kind == Number {
			if _, err := parseNumber(f.Name, raw); err != nil {
				return nil, err
			}
		}
		payload.Add(f.Name, raw)
	}
	return payload, nil
}

func parseNumber(field, raw string) (float64, error) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return n, nil
}
