// Package client talks to the purchase-search server's HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/corinnekunze/amazon-purchase-search/internal/model"
	"github.com/google/uuid"
)

// Fallback messages used when an error response carries no error field.
const (
	uploadFallbackMessage = "Upload failed"
	searchFallbackMessage = "Search failed"
)

// Client issues requests against one purchase-search server.
//
// It deliberately has no request timeout: the server's combination search
// can run long on large exports, and the underlying transport's timeout,
// if any, governs.
type Client struct {
	httpClient   *http.Client
	newRequestID func() string
	baseURL      string
}

// New creates a client for the server at baseURL. A nil httpClient gets
// a default one.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		newRequestID: uuid.NewString,
	}
}

// UploadSummary is the server's report of a successful upload.
type UploadSummary struct {
	DateRange   *DateRange `json:"date_range,omitempty"`
	Message     string     `json:"message,omitempty"`
	TotalItems  int        `json:"total_items"`
	TotalOrders int        `json:"total_orders"`
}

// DateRange spans the purchase dates found in the uploaded export.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// Health is the server's self-report, including whether any purchase
// data is loaded server-side.
type Health struct {
	Status      string `json:"status"`
	DataLoaded  bool   `json:"data_loaded"`
	TotalItems  int    `json:"total_items"`
	TotalOrders int    `json:"total_orders"`
}

// Upload sends a purchase-history export as a multipart body under the
// field name "file". A non-2xx response becomes an *UploadError carrying
// the server's message; a failure to reach the server at all becomes a
// *TransportError.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*UploadSummary, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err = io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}
	if err = mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	requestID := c.stampRequest(req)

	slog.Debug("Uploading purchase history",
		"file", filename,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "upload", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if !successful(resp.StatusCode) {
		return nil, &UploadError{Message: errorMessage(resp.Body, uploadFallbackMessage)}
	}

	var summary UploadSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &summary, nil
}

// Search runs one search with the criteria forwarded verbatim as query
// parameters. Outcomes fall into exactly three kinds: decoded results,
// *ApplicationError (server said no), or *TransportError (no response).
func (c *Client) Search(ctx context.Context, criteria model.Criteria) (*model.SearchResults, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/purchases/search", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.URL.RawQuery = criteria.Values().Encode()
	requestID := c.stampRequest(req)

	slog.Debug("Searching purchases",
		"date", criteria.Date,
		"amount", criteria.Amount,
		"search_type", criteria.SearchType,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if !successful(resp.StatusCode) {
		return nil, &ApplicationError{Message: errorMessage(resp.Body, searchFallbackMessage)}
	}

	var results model.SearchResults
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &results, nil
}

// Health asks the server whether it is up and has data loaded.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create health request: %w", err)
	}
	c.stampRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "health", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if !successful(resp.StatusCode) {
		return nil, &ApplicationError{Message: errorMessage(resp.Body, "server unhealthy")}
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &health, nil
}

// stampRequest attaches a correlation ID and returns it for logging.
func (c *Client) stampRequest(req *http.Request) string {
	id := c.newRequestID()
	req.Header.Set("X-Request-ID", id)
	return id
}

func successful(status int) bool {
	return status >= 200 && status < 300
}

// errorMessage pulls the error field out of a failure body, falling back
// to a generic message when the body is empty or unparseable.
func errorMessage(body io.Reader, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Error == "" {
		return fallback
	}
	return payload.Error
}
