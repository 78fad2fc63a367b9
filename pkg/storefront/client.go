package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout is applied when Config.Timeout is zero. A hung backend call
// fails the operation instead of hanging the screen forever.
const DefaultTimeout = 15 * time.Second

// Config holds storefront API connection parameters.
type Config struct {
	// BaseURL is the API root, e.g. "https://nihonga-backend.onrender.com/api".
	BaseURL string
	// AssetBaseURL is joined with relative image paths returned by the
	// backend. Empty means BaseURL with a trailing "/api" stripped.
	AssetBaseURL string
	Timeout      time.Duration
}

// Client is the HTTP client for the storefront backend. One method per
// (entity, operation) pair; every method either returns the decoded response
// body or an error, transport-level failures wrapped and HTTP failures
// normalized to *APIError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	assetBase  string
	debug      bool
}

// NewClient constructs a storefront client with sane defaults.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	assetBase := cfg.AssetBaseURL
	if assetBase == "" {
		assetBase = strings.TrimSuffix(cfg.BaseURL, "/api")
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		assetBase:  strings.TrimSuffix(assetBase, "/"),
		debug:      os.Getenv("ENV") == "development",
	}
}

// ImageURL resolves a relative image path returned by the backend against the
// static-asset base. Absolute URLs pass through untouched.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.assetBase + path
}

// doJSON performs an HTTP request with an optional JSON body and decodes the
// JSON response into result (skipped when result is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		if c.debug {
			log.Debug().
				Str("method", method).
				Str("endpoint", c.baseURL+path).
				RawJSON("request", payload).
				Msg("[STOREFRONT] Outgoing request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, result)
}

// doMultipart performs an HTTP request with a multipart/form-data body built
// from form (text fields plus raw file attachments).
func (c *Client) doMultipart(ctx context.Context, method, path string, form *Form, result any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("failed to encode multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	if c.debug {
		log.Debug().
			Str("method", method).
			Str("endpoint", c.baseURL+path).
			Strs("fields", form.FieldNames()).
			Int("files", form.FileCount()).
			Msg("[STOREFRONT] Outgoing multipart request")
	}
	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.debug {
		log.Debug().
			Str("endpoint", req.URL.Path).
			Int("status_code", resp.StatusCode).
			Msg("[STOREFRONT] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
