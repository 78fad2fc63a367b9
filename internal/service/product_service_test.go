package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/pkg/storefront"
)

func TestProductAddSendsSizesAsJSONArray(t *testing.T) {
	var gotSizes string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotSizes = r.FormValue("sizes")
			assert.Equal(t, "Silk Kimono", r.FormValue("name"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"_id":"p1","name":"Silk Kimono"}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"_id":"p1","name":"Silk Kimono","stock":5}]`))
		}
	})
	svc := NewProductService(client, 10)

	sub := form.Submission{Values: map[string]string{
		"name":  "Silk Kimono",
		"price": "240",
		"sizes": "S, M ,L",
	}}
	require.NoError(t, svc.Add(context.Background(), sub))

	var sizes []string
	require.NoError(t, json.Unmarshal([]byte(gotSizes), &sizes))
	assert.Equal(t, []string{"S", "M", "L"}, sizes)
}

func TestProductAddRejectsMissingName(t *testing.T) {
	svc := NewProductService(newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid submission must not reach the backend")
	}), 10)

	err := svc.Add(context.Background(), form.Submission{Values: map[string]string{"price": "240"}})
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestEditSchemaExposesStock(t *testing.T) {
	svc := NewProductService(nil, 10)
	schema := svc.EditSchema(nil)

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		assert.False(t, f.Required, "edit fields are all optional")
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "stock")
	assert.NotContains(t, svcFieldNames(svc.AddSchema(nil)), "stock")

	// Stock sits right after price.
	for i, n := range names {
		if n == "price" {
			require.Greater(t, len(names), i+1)
			assert.Equal(t, "stock", names[i+1])
		}
	}
}

func svcFieldNames(schema form.Schema) []string {
	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestProductStateAnnotations(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"p1","name":"Kimono","stock":2,"heroImage":"uploads/kimono.jpg"}]`))
	})
	svc := NewProductService(client, 10)
	require.NoError(t, svc.Refresh(context.Background()))

	views, _, err := svc.State()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, StatusLowStock, views[0].StockStatus)
	assert.Contains(t, views[0].HeroImageURL, "/uploads/kimono.jpg")

	product, ok := svc.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "Kimono", product.Name)
	_, ok = svc.Find("p2")
	assert.False(t, ok)
}

func TestCollectionOptions(t *testing.T) {
	svc := NewProductService(nil, 10)
	schema := svc.AddSchema([]storefront.Collection{{ID: "c1", Name: "Kimono"}, {ID: "c2", Name: "Obi"}})

	var selectField form.Field
	for _, f := range schema.Fields {
		if f.Kind == form.Select {
			selectField = f
		}
	}
	require.Len(t, selectField.Options, 2)
	assert.Equal(t, form.Option{Label: "Kimono", Value: "c1"}, selectField.Options[0])
}
