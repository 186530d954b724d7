package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/api/handlers"
)

func TestCatalogsHandler_List(t *testing.T) {
	handler := handlers.NewCatalogsHandler(newTestMarket())

	req := httptest.NewRequest(http.MethodGet, "/api/catalogs", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response dto.CatalogListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	require.Equal(t, 4, response.Count)
	assert.Equal(t, "Seller1", response.Catalogs[0].Seller)
	require.Len(t, response.Catalogs[0].Entries, 3)
	assert.Equal(t, "Book1", response.Catalogs[0].Entries[0].Title)
	assert.Equal(t, 20.0, response.Catalogs[0].Entries[0].UnitPrice)
}

func TestCatalogsHandler_Get(t *testing.T) {
	t.Run("returns seller catalog", func(t *testing.T) {
		handler := handlers.NewCatalogsHandler(newTestMarket())

		req := httptest.NewRequest(http.MethodGet, "/api/catalogs/Seller3", nil)
		req = withURLParam(req, "seller", "Seller3")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dto.CatalogResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Seller3", response.Seller)
		assert.Equal(t, 16.0, response.Entries[0].UnitPrice)
	})

	t.Run("unknown seller is not found", func(t *testing.T) {
		handler := handlers.NewCatalogsHandler(newTestMarket())

		req := httptest.NewRequest(http.MethodGet, "/api/catalogs/Nobody", nil)
		req = withURLParam(req, "seller", "Nobody")
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
