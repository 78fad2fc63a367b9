// Package handler exposes each console screen as a JSON surface for the UI
// shell. Handlers collect input, hand it to the screen's service and render
// the standard response envelope; they hold no state of their own.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// listState is the envelope payload every list screen renders: the cached
// items plus the loading flag and inline error message, never a hard failure.
type listState[T any] struct {
	Items   []T    `json:"items"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func newListState[T any](items []T, loading bool, err error) listState[T] {
	state := listState[T]{Items: items, Loading: loading}
	if err != nil {
		state.Error = err.Error()
	}
	return state
}

// submissionFromRequest collects a multipart form submission: plain values
// (first value per field) plus raw file attachments.
func submissionFromRequest(c *gin.Context) (form.Submission, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return form.Submission{}, err
	}

	sub := form.Submission{
		Values: make(map[string]string, len(mf.Value)),
		Files:  make(map[string][]form.Upload, len(mf.File)),
	}
	for name, values := range mf.Value {
		if len(values) > 0 {
			sub.Values[name] = values[0]
		}
	}
	for name, headers := range mf.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				return form.Submission{}, err
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return form.Submission{}, err
			}
			if len(content) == 0 {
				continue
			}
			sub.Files[name] = append(sub.Files[name], form.Upload{
				Filename: header.Filename,
				Content:  content,
			})
		}
	}
	return sub, nil
}

// respondError maps a service failure onto the response envelope.
func respondError(c *gin.Context, err error) {
	var validationErr *form.ValidationError
	if errors.As(err, &validationErr) {
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, utils.ErrOrderNotFound):
		utils.Error(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, utils.ErrUpdateInFlight):
		utils.Error(c, http.StatusConflict, "UPDATE_IN_FLIGHT", "Another update is still in progress")
	case errors.Is(err, utils.ErrAlreadyCancelled):
		utils.Error(c, http.StatusConflict, "ORDER_ALREADY_CANCELLED", "Order is already cancelled")
	case errors.Is(err, utils.ErrNotRefundable):
		utils.Error(c, http.StatusConflict, "PAYMENT_NOT_REFUNDABLE", "Payment is not refundable")
	case errors.Is(err, utils.ErrInvalidStatus):
		utils.Error(c, http.StatusBadRequest, "INVALID_ORDER_STATUS", "Unknown order status")
	case errors.Is(err, utils.ErrInvalidStock):
		utils.Error(c, http.StatusBadRequest, "INVALID_STOCK_QUANTITY", "Stock must not be negative")
	case errors.Is(err, utils.ErrMissingFile):
		utils.Error(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required")
	default:
		var apiErr *storefront.APIError
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = "Storefront backend rejected the request"
			}
			utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", message)
			return
		}
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Storefront backend unreachable")
	}
}
