package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-aggregator/internal/api/handlers"
	cacheMocks "github.com/donaldgifford/listing-aggregator/internal/cache/mocks"
	searchMocks "github.com/donaldgifford/listing-aggregator/internal/search/mocks"
	storeMocks "github.com/donaldgifford/listing-aggregator/internal/store/mocks"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(
		storeMocks.NewMockStore(t),
		searchMocks.NewMockIndex(t),
		nil,
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Healthz(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	down := errors.New("connection refused")

	tests := []struct {
		name       string
		dbErr      error
		indexErr   error
		cacheErr   error
		noCache    bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all dependencies up",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"database":"ok","search_index":"ok","cache":"ok"}}`,
		},
		{
			name:       "database down",
			dbErr:      down,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"database":"unavailable","search_index":"ok","cache":"ok"}}`,
		},
		{
			name:       "search index down",
			indexErr:   down,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"database":"ok","search_index":"unavailable","cache":"ok"}}`,
		},
		{
			name:       "cache down is advisory",
			cacheErr:   down,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"database":"ok","search_index":"ok","cache":"degraded"}}`,
		},
		{
			name:       "cache disabled",
			noCache:    true,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"database":"ok","search_index":"ok","cache":"disabled"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := storeMocks.NewMockStore(t)
			db.EXPECT().Ping(mock.Anything).Return(tt.dbErr)

			index := searchMocks.NewMockIndex(t)
			index.EXPECT().Ping(mock.Anything).Return(tt.indexErr)

			var h *handlers.HealthHandler
			if tt.noCache {
				h = handlers.NewHealthHandler(db, index, nil)
			} else {
				c := cacheMocks.NewMockStore(t)
				c.EXPECT().Ping(mock.Anything).Return(tt.cacheErr)
				h = handlers.NewHealthHandler(db, index, c)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.Readyz(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
