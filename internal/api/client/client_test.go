package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetListings(context.Background(), &GetListingsParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "huma problem detail",
			status:     http.StatusBadRequest,
			body:       `{"title":"Bad Request","status":400,"detail":"invalid page \"0\": must be at least 1"}`,
			wantDetail: `invalid page "0": must be at least 1`,
		},
		{
			name:       "title only",
			status:     http.StatusBadGateway,
			body:       `{"title":"Bad Gateway","status":502}`,
			wantDetail: "Bad Gateway",
		},
		{
			name:       "plain text",
			status:     http.StatusInternalServerError,
			body:       "boom\n",
			wantDetail: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).GetListings(context.Background(), &GetListingsParams{})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestClient_GetListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("category_id"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "price", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "asc", r.URL.Query().Get("sort_order"))
		assert.Equal(t, "10", r.URL.Query().Get("price_min"))
		assert.False(t, r.URL.Query().Has("price_max"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListingsResponse{
			Status: "success",
			Data: []domain.Listing{
				{ID: 1, SellerID: 3, Title: "HPE DL360", Price: decimal.RequireFromString("350.00")},
			},
			Page:     2,
			PageSize: 20,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.GetListings(context.Background(), &GetListingsParams{
		CategoryID: 7,
		Page:       2,
		SortBy:     "price",
		SortOrder:  "asc",
		PriceMin:   "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Data, 1)
	assert.True(t, resp.Data[0].Price.Equal(decimal.RequireFromString("350")))
}

func TestClient_GetListingsDefaultsOmitted(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"status":"success","data":[],"page":1,"page_size":20}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).GetListings(context.Background(), &GetListingsParams{})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 20, resp.PageSize)
}

func TestClient_Ready(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/readyz", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ready","checks":{"database":"ok","search_index":"ok","cache":"ok"}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Ready(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "ok", resp.Checks["search_index"])
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	hc := &http.Client{Timeout: 3 * time.Second}
	c := New("http://example.com/", WithHTTPClient(hc))
	assert.Same(t, hc, c.httpClient)
	assert.Equal(t, "http://example.com", c.baseURL)
}
