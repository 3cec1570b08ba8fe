package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-aggregator/internal/search"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// elasticHandler wraps h with the product header the client verifies.
func elasticHandler(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}
}

func newTestIndex(t *testing.T, h http.HandlerFunc, opts ...search.ElasticOption) *search.ElasticIndex {
	t.Helper()

	srv := httptest.NewServer(elasticHandler(h))
	t.Cleanup(srv.Close)

	idx, err := search.NewElasticIndex(search.ElasticConfig{Addresses: []string{srv.URL}}, opts...)
	require.NoError(t, err)
	return idx
}

func TestElasticIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantIDs    []int64
	}{
		{
			name: "decodes hits in index order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/listings/_search", r.URL.Path)
				assert.Equal(t, "20", r.URL.Query().Get("size"))
				assert.Equal(t, "40", r.URL.Query().Get("from"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				var parsed map[string]any
				assert.NoError(t, json.Unmarshal(body, &parsed))
				assert.Contains(t, parsed, "query")
				assert.Contains(t, parsed, "sort")

				_, _ = w.Write([]byte(`{
					"took": 3,
					"hits": {
						"total": {"value": 3, "relation": "eq"},
						"hits": [
							{"_id": "1", "_source": {"id": 1, "seller_id": 10, "title": "A", "price": 12.5, "rank_score": 0.9}},
							{"_id": "2", "_source": {"id": 2, "seller_id": 10, "title": "B", "price": 9.99, "rank_score": 0.4}},
							{"_id": "3", "_source": {"id": 3, "seller_id": 11, "title": "C", "price": 100, "rank_score": 0.7}}
						]
					}
				}`))
			},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name: "empty hits",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"hits": {"hits": []}}`))
			},
			wantIDs: []int64{},
		},
		{
			name: "error status does not leak query",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": {"type": "parsing_exception"}}`))
			},
			wantErr:    true,
			errContain: "status 400",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"hits": [`))
			},
			wantErr:    true,
			errContain: "decoding search response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx := newTestIndex(t, tt.handler)
			q := search.BuildQuery(7, []int64{10, 11}, domain.FilterSet{}, domain.DefaultSort())

			got, err := idx.Search(context.Background(), search.DefaultIndexName, q, domain.PageSize, 40)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				assert.NotContains(t, err.Error(), "seller_id")
				return
			}

			require.NoError(t, err)
			gotIDs := make([]int64, 0, len(got))
			for _, l := range got {
				gotIDs = append(gotIDs, l.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestElasticIndex_SearchDecodesDecimals(t *testing.T) {
	t.Parallel()

	idx := newTestIndex(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": {"hits": [
			{"_source": {"id": 5, "seller_id": 2, "title": "Gold", "price": 0.1, "rank_score": 1.25}}
		]}}`))
	})

	got, err := idx.Search(context.Background(), "listings", search.BuildQuery(1, []int64{2}, domain.FilterSet{}, domain.DefaultSort()), 20, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0.1", got[0].Price.String())
	assert.Equal(t, "1.25", got[0].RankScore.String())
	assert.Equal(t, int64(2), got[0].SellerID)
}

func TestElasticIndex_RateLimiterCanceled(t *testing.T) {
	t.Parallel()

	rl := search.NewRateLimiter(0.001, 1)
	require.NoError(t, rl.Wait(context.Background()))

	idx := newTestIndex(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("search should not reach the index")
	}, search.WithRateLimiter(rl))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := idx.Search(ctx, "listings", search.BuildQuery(1, []int64{1}, domain.FilterSet{}, domain.DefaultSort()), 20, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestElasticIndex_Ping(t *testing.T) {
	t.Parallel()

	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, idx.Ping(context.Background()))

	down := newTestIndex(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	require.Error(t, down.Ping(context.Background()))
}
