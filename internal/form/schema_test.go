package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productSchema() Schema {
	return Schema{
		Title: "Add Product",
		Fields: []Field{
			{Label: "Name", Name: "name", Kind: Text, Required: true},
			{Label: "Price", Name: "price", Kind: Number, Required: true},
			{Label: "Description", Name: "description", Kind: Textarea},
			{Label: "Hero Image", Name: "heroImage", Kind: File, Required: true},
			{Label: "Showcase", Name: "showcaseImages", Kind: File, Multiple: true},
		},
	}
}

func TestValidateRequiredValue(t *testing.T) {
	schema := productSchema()
	sub := Submission{
		Values: map[string]string{"name": "  ", "price": "120"},
		Files:  map[string][]Upload{"heroImage": {{Filename: "a.jpg"}}},
	}

	err := schema.Validate(sub)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestValidateRequiredFile(t *testing.T) {
	schema := productSchema()
	sub := Submission{
		Values: map[string]string{"name": "Kimono", "price": "120"},
	}

	err := schema.Validate(sub)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "heroImage", verr.Field)
}

func TestValidateOK(t *testing.T) {
	schema := productSchema()
	sub := Submission{
		Values: map[string]string{"name": "Kimono", "price": "120"},
		Files:  map[string][]Upload{"heroImage": {{Filename: "a.jpg"}}},
	}
	require.NoError(t, schema.Validate(sub))
}

func TestPrefillSkipsFileFields(t *testing.T) {
	schema := productSchema()
	values := schema.Prefill(map[string]string{
		"name":      "Kimono",
		"price":     "120",
		"heroImage": "uploads/a.jpg",
		"unknown":   "x",
	})

	assert.Equal(t, map[string]string{"name": "Kimono", "price": "120"}, values)
}

func TestJSONPayload(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "firstName", Kind: Text},
		{Name: "age", Kind: Number},
		{Name: "email", Kind: Email},
		{Name: "avatar", Kind: File},
	}}
	sub := Submission{Values: map[string]string{
		"firstName": "Aiko",
		"age":       "29",
		"avatar":    "ignored",
	}}

	payload, err := schema.JSONPayload(sub)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"firstName": "Aiko", "age": float64(29)}, payload)
}

func TestJSONPayloadRejectsBadNumber(t *testing.T) {
	schema := Schema{Fields: []Field{{Name: "price", Kind: Number}}}

	_, err := schema.JSONPayload(Submission{Values: map[string]string{"price": "cheap"}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	_, err = schema.JSONPayload(Submission{Values: map[string]string{"price": "-5"}})
	require.ErrorAs(t, err, &verr)
}

func TestMultipartPayloadSingleFileTakesFirst(t *testing.T) {
	schema := productSchema()
	sub := Submission{
		Values: map[string]string{"name": "Kimono", "price": "120"},
		Files: map[string][]Upload{
			"heroImage":      {{Filename: "a.jpg"}, {Filename: "b.jpg"}},
			"showcaseImages": {{Filename: "c.jpg"}, {Filename: "d.jpg"}},
		},
	}

	payload, err := schema.MultipartPayload(sub)
	require.NoError(t, err)
	require.NotNil(t, payload)
	// heroImage keeps one attachment, showcaseImages keeps both.
	assert.Equal(t, 3, payload.FileCount())
}

func TestMultipartPayloadValidatesNumbers(t *testing.T) {
	schema := productSchema()
	sub := Submission{
		Values: map[string]string{"name": "Kimono", "price": "not-a-price"},
		Files:  map[string][]Upload{"heroImage": {{Filename: "a.jpg"}}},
	}

	_, err := schema.MultipartPayload(sub)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, SplitList("S, M ,L"))
	assert.Empty(t, SplitList(" , ,"))
	assert.Empty(t, SplitList(""))
}
