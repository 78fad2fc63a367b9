package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// LandingHandler handles the landing-page curation endpoints.
type LandingHandler struct {
	landing     *service.LandingService
	collections *service.CollectionService
	products    *service.ProductService
}

// NewLandingHandler constructs a LandingHandler.
func NewLandingHandler(landing *service.LandingService, collections *service.CollectionService, products *service.ProductService) *LandingHandler {
	return &LandingHandler{landing: landing, collections: collections, products: products}
}

// Get handles GET /screens/landing.
func (h *LandingHandler) Get(c *gin.Context) {
	if err := h.landing.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Landing retrieved", h.landing.State())
}

// UploadHero handles POST /screens/landing/heros (multipart field "image").
func (h *LandingHandler) UploadHero(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unreadable image file")
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Unreadable image file")
		return
	}

	hero, err := h.landing.UploadHero(c.Request.Context(), header.Filename, content)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Hero image uploaded", hero)
}

// DeleteHero handles DELETE /screens/landing/heros/:id.
func (h *LandingHandler) DeleteHero(c *gin.Context) {
	if err := h.landing.DeleteHero(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Hero image deleted", h.landing.State())
}

// AddCollection handles POST /screens/landing/collections/:id. The id must
// name a known collection; adding one already featured is a no-op.
func (h *LandingHandler) AddCollection(c *gin.Context) {
	id := c.Param("id")
	collection, ok := h.collections.Find(id)
	if !ok {
		if err := h.collections.Refresh(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		if collection, ok = h.collections.Find(id); !ok {
			utils.Error(c, http.StatusNotFound, "COLLECTION_NOT_FOUND", "Collection not found")
			return
		}
	}
	if err := h.landing.AddCollection(c.Request.Context(), collection); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Collection featured", h.landing.State())
}

// RemoveCollection handles DELETE /screens/landing/collections/:id.
func (h *LandingHandler) RemoveCollection(c *gin.Context) {
	if err := h.landing.RemoveCollection(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Collection unfeatured", h.landing.State())
}

// AddBestSeller handles POST /screens/landing/bestsellers/:id.
func (h *LandingHandler) AddBestSeller(c *gin.Context) {
	id := c.Param("id")
	product, ok := h.products.Find(id)
	if !ok {
		if err := h.products.Refresh(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		if product, ok = h.products.Find(id); !ok {
			utils.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
	}
	if err := h.landing.AddBestSeller(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Best seller added", h.landing.State())
}

// RemoveBestSeller handles DELETE /screens/landing/bestsellers/:id.
func (h *LandingHandler) RemoveBestSeller(c *gin.Context) {
	if err := h.landing.RemoveBestSeller(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Best seller removed", h.landing.State())
}
