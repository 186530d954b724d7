package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket-labs/bookmarket/internal/api"
	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/domain/ledger"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/storage"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()
	repo := storage.NewMemoryRepository()
	m := market.New(market.Config{
		Buyer:      "ALICE",
		Sellers:    market.DefaultSellers(),
		Broker:     &ledger.Broker{Name: "Hermes", FlatFee: 5.0},
		Repository: repo,
	})
	return api.NewServer(api.DefaultConfig(), m, repo, nil)
}

func TestServer_Routes(t *testing.T) {
	server := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("full purchase flow", func(t *testing.T) {
		// Buy one Book1 through the API
		body := strings.NewReader(`{"title": "book1", "quantity": 1}`)
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", body)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var purchase dto.PurchaseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&purchase))
		assert.Equal(t, "Seller3", purchase.Seller)
		assert.Equal(t, 16.0, purchase.TotalPrice)

		// Seller3's catalog now shows reduced stock
		req = httptest.NewRequest(http.MethodGet, "/api/catalogs/Seller3", nil)
		rec = httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var cat dto.CatalogResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&cat))
		assert.Equal(t, 1, cat.Entries[0].Quantity)

		// Settlement includes the broker fee
		req = httptest.NewRequest(http.MethodGet, "/api/settlement", nil)
		rec = httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		var settlement dto.SettlementResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&settlement))
		assert.Equal(t, 21.0, settlement.GrandTotal)
	})

	t.Run("unknown item is reported not available", func(t *testing.T) {
		body := strings.NewReader(`{"title": "Book99"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/purchases", body)
		rec := httptest.NewRecorder()

		server.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
