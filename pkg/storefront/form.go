package storefront

import (
	"bytes"
	"mime/multipart"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

// Form accumulates text fields and raw file attachments for a multipart
// request. Field order is preserved; repeated names are allowed (the backend
// reads showcaseImages as a repeated field).
type Form struct {
	fields []formField
	files  []formFile
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Add appends a text field.
func (f *Form) Add(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a raw file attachment under the given field name.
func (f *Form) AddFile(field, filename string, content []byte) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

// encode renders the form as a multipart body and returns it with the
// boundary-bearing content type.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// FieldNames lists the text field names in insertion order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.name)
	}
	return names
}

// FileCount reports how many file attachments the form carries.
func (f *Form) FileCount() int {
	return len(f.files)
}
