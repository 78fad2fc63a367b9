package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

func TestStockStatus(t *testing.T) {
	cases := []struct {
		stock     int
		threshold int
		want      string
	}{
		{0, 10, StatusOutOfStock},
		{-1, 10, StatusOutOfStock},
		{1, 10, StatusLowStock},
		{10, 10, StatusLowStock}, // threshold itself is still low
		{11, 10, StatusInStock},
		{1, 0, StatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StockStatus(tc.stock, tc.threshold), "stock=%d threshold=%d", tc.stock, tc.threshold)
	}
}

func TestStockStateAnnotatesStatus(t *testing.T) {
	items := []storefront.StockItem{
		{ID: "p1", Name: "Kimono", Stock: 0},
		{ID: "p2", Name: "Obi", Stock: 3},
		{ID: "p3", Name: "Geta", Stock: 50},
	}
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(items))
	})
	svc := NewStockService(client, 10)
	require.NoError(t, svc.Refresh(context.Background()))

	views, _, err := svc.State()
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, StatusOutOfStock, views[0].Status)
	assert.Equal(t, StatusLowStock, views[1].Status)
	assert.Equal(t, StatusInStock, views[2].Status)
}

func TestSearchForwardsQuery(t *testing.T) {
	var gotSearch string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	svc := NewStockService(client, 10)

	require.NoError(t, svc.Search(context.Background(), "kimono"))
	assert.Equal(t, "kimono", gotSearch)
}

func TestSetStockRejectsNegative(t *testing.T) {
	svc := NewStockService(newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid quantity")
	}), 10)

	assert.ErrorIs(t, svc.SetStock(context.Background(), "p1", -1), utils.ErrInvalidStock)
}

func TestSetStockRefetches(t *testing.T) {
	var updates, lists int
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			updates++
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			lists++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"_id":"p1","name":"Kimono","stock":7}]`))
		}
	})
	svc := NewStockService(client, 10)

	require.NoError(t, svc.SetStock(context.Background(), "p1", 7))
	assert.Equal(t, 1, updates)
	assert.Equal(t, 1, lists, "a quantity update must refetch the list")

	views, _, err := svc.State()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 7, views[0].Stock)
}

func TestBulkSetStockRejectsNegative(t *testing.T) {
	svc := NewStockService(newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid quantity")
	}), 10)

	err := svc.BulkSetStock(context.Background(), []storefront.StockUpdate{
		{ProductID: "p1", Stock: 4},
		{ProductID: "p2", Stock: -2},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidStock)
}
