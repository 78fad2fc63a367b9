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

func landingBackend(t *testing.T, onSet func(path string, body map[string][]string)) *storefront.Client {
	t.Helper()
	return newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/heros/getall":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"_id":"h1","image":"uploads/hero1.jpg"}]`))
		case r.URL.Path == "/api/landing":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"collections":[{"_id":"c1","name":"Kimono"}],"bestSellers":[]}`))
		case r.Method == http.MethodPost:
			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if onSet != nil {
				onSet(r.URL.Path, body)
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestLandingRefresh(t *testing.T) {
	svc := NewLandingService(landingBackend(t, nil))
	require.NoError(t, svc.Refresh(context.Background()))

	state := svc.State()
	require.Len(t, state.Heros, 1)
	assert.Contains(t, state.Heros[0].ImageURL, "/uploads/hero1.jpg")
	require.Len(t, state.Collections, 1)
	assert.Equal(t, "c1", state.Collections[0].ID)
	assert.Empty(t, state.BestSellers)
}

func TestAddCollectionPushesFullIDList(t *testing.T) {
	var gotPath string
	var gotIDs []string
	svc := NewLandingService(landingBackend(t, func(path string, body map[string][]string) {
		gotPath = path
		gotIDs = body["collections"]
	}))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.AddCollection(context.Background(), storefront.Collection{ID: "c2", Name: "Obi"}))
	assert.Equal(t, "/api/landing/collections", gotPath)
	assert.Equal(t, []string{"c1", "c2"}, gotIDs, "existing entries keep their order")

	state := svc.State()
	require.Len(t, state.Collections, 2)
	assert.Equal(t, "c2", state.Collections[1].ID)
}

func TestAddCollectionDuplicateIsNoOp(t *testing.T) {
	var sets int
	svc := NewLandingService(landingBackend(t, func(string, map[string][]string) { sets++ }))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.AddCollection(context.Background(), storefront.Collection{ID: "c1"}))
	assert.Equal(t, 0, sets, "re-adding a featured collection must not hit the backend")
	assert.Len(t, svc.State().Collections, 1)
}

func TestAddCollectionRollsBackOnFailure(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/heros/getall":
			_, _ = w.Write([]byte(`[]`))
		case r.URL.Path == "/api/landing" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"collections":[{"_id":"c1"}],"bestSellers":[]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"save failed"}`))
		}
	})
	svc := NewLandingService(client)
	require.NoError(t, svc.Refresh(context.Background()))

	require.Error(t, svc.AddCollection(context.Background(), storefront.Collection{ID: "c2"}))

	state := svc.State()
	require.Len(t, state.Collections, 1)
	assert.Equal(t, "c1", state.Collections[0].ID, "failed save must not leave the new entry visible")
}

func TestRemoveCollection(t *testing.T) {
	var gotIDs []string
	svc := NewLandingService(landingBackend(t, func(path string, body map[string][]string) {
		gotIDs = body["collections"]
	}))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.RemoveCollection(context.Background(), "c1"))
	assert.Empty(t, gotIDs)
	assert.Empty(t, svc.State().Collections)
}

func TestBestSellerSetSemantics(t *testing.T) {
	var sets int
	var gotIDs []string
	svc := NewLandingService(landingBackend(t, func(path string, body map[string][]string) {
		sets++
		gotIDs = body["bestSellers"]
	}))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.AddBestSeller(context.Background(), storefront.Product{ID: "p1"}))
	require.NoError(t, svc.AddBestSeller(context.Background(), storefront.Product{ID: "p1"}))
	assert.Equal(t, 1, sets)
	assert.Equal(t, []string{"p1"}, gotIDs)
}

func TestUploadHeroRequiresContent(t *testing.T) {
	svc := NewLandingService(landingBackend(t, nil))

	_, err := svc.UploadHero(context.Background(), "empty.jpg", nil)
	assert.ErrorIs(t, err, utils.ErrMissingFile)
}

func TestUploadHeroAppendsLocally(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/heros/getall":
			_, _ = w.Write([]byte(`[{"_id":"h1","image":"uploads/hero1.jpg"}]`))
		case r.URL.Path == "/api/landing":
			_, _ = w.Write([]byte(`{"collections":[],"bestSellers":[]}`))
		case r.URL.Path == "/api/heros/post":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, header, err := r.FormFile("image")
			require.NoError(t, err)
			assert.Equal(t, "new.jpg", header.Filename)
			_, _ = w.Write([]byte(`{"_id":"h2","image":"uploads/new.jpg"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	svc := NewLandingService(client)
	require.NoError(t, svc.Refresh(context.Background()))

	hero, err := svc.UploadHero(context.Background(), "new.jpg", []byte{0xff})
	require.NoError(t, err)
	assert.Equal(t, "h2", hero.ID)

	state := svc.State()
	require.Len(t, state.Heros, 2)
	assert.Equal(t, "h2", state.Heros[1].ID)
}

func TestDeleteHeroDropsAfterConfirm(t *testing.T) {
	var deleted string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/heros/getall":
			_, _ = w.Write([]byte(`[{"_id":"h1"},{"_id":"h2"}]`))
		case r.URL.Path == "/api/landing":
			_, _ = w.Write([]byte(`{"collections":[],"bestSellers":[]}`))
		case r.Method == http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	svc := NewLandingService(client)
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.DeleteHero(context.Background(), "h1"))
	assert.Equal(t, "/api/heros/h1", deleted)

	state := svc.State()
	require.Len(t, state.Heros, 1)
	assert.Equal(t, "h2", state.Heros[0].ID)
}
