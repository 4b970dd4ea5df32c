package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "orders.csv", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "order id,price\n1,2.50\n", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": "CSV uploaded successfully",
			"total_items": 100,
			"total_orders": 20,
			"date_range": {"earliest": "2024-01-01", "latest": "2024-06-30"}
		}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	summary, err := c.Upload(context.Background(), "orders.csv", strings.NewReader("order id,price\n1,2.50\n"))

	require.NoError(t, err)
	assert.Equal(t, 100, summary.TotalItems)
	assert.Equal(t, 20, summary.TotalOrders)
	require.NotNil(t, summary.DateRange)
	assert.Equal(t, "2024-01-01", summary.DateRange.Earliest)
	assert.Equal(t, "2024-06-30", summary.DateRange.Latest)
}

func TestClient_UploadServerRejection(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "server error message is surfaced verbatim",
			status:      http.StatusBadRequest,
			body:        `{"error": "Invalid CSV format"}`,
			wantMessage: "Invalid CSV format",
		},
		{
			name:        "missing error field falls back",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantMessage: "Upload failed",
		},
		{
			name:        "unparseable body falls back",
			status:      http.StatusBadGateway,
			body:        "<html>bad gateway</html>",
			wantMessage: "Upload failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL, nil)
			_, err := c.Upload(context.Background(), "orders.csv", strings.NewReader("data"))

			var uploadErr *UploadError
			require.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, tt.wantMessage, uploadErr.Message)
		})
	}
}

func TestClient_UploadTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // nothing listening anymore

	c := New(server.URL, nil)
	_, err := c.Upload(context.Background(), "orders.csv", strings.NewReader("data"))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "upload", transportErr.Op)
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/purchases/search", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		// Criteria arrive verbatim, even nonsense.
		q := r.URL.Query()
		assert.Equal(t, "2024-03-15", q.Get("date"))
		assert.Equal(t, "53.99", q.Get("amount"))
		assert.Equal(t, "7", q.Get("days_range"))
		assert.Equal(t, "all", q.Get("search_type"))
		assert.Equal(t, "5", q.Get("max_combo_items"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_matches": 2,
			"item_matches": [
				{"amount": 53.99, "description": "USB-C cable", "date": "2024-03-15", "days_from_target": 0}
			],
			"order_matches": [],
			"combination_matches": [
				{"total_amount": 53.99, "item_count": 2, "probability_score": 72.5, "same_order": true,
				 "items": [{"amount": 30, "days_from_target": -1}, {"amount": 23.99, "days_from_target": 2}]}
			]
		}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	results, err := c.Search(context.Background(), model.Criteria{
		Date:          "2024-03-15",
		Amount:        "53.99",
		DaysRange:     "7",
		SearchType:    "all",
		MaxComboItems: "5",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, results.TotalMatches)
	require.Len(t, results.ItemMatches, 1)
	assert.Equal(t, "USB-C cable", results.ItemMatches[0].Description)
	require.NotNil(t, results.ItemMatches[0].DaysFromTarget)
	assert.Equal(t, 0, *results.ItemMatches[0].DaysFromTarget)
	require.Len(t, results.CombinationMatches, 1)
	require.NotNil(t, results.CombinationMatches[0].ProbabilityScore)
	assert.InDelta(t, 72.5, *results.CombinationMatches[0].ProbabilityScore, 0.001)
	assert.True(t, results.CombinationMatches[0].SameOrder)
	assert.Len(t, results.CombinationMatches[0].Items, 2)
}

func TestClient_SearchApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Missing parameters"}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.Search(context.Background(), model.Criteria{})

	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Missing parameters", appErr.Message)
}

func TestClient_SearchTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	c := New(server.URL, nil)
	_, err := c.Search(context.Background(), model.Criteria{})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "search", transportErr.Op)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "healthy", "data_loaded": true, "total_items": 42, "total_orders": 7}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	health, err := c.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.DataLoaded)
	assert.Equal(t, 42, health.TotalItems)
	assert.Equal(t, 7, health.TotalOrders)
}
