package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

// Base provides shared functionality for all handlers.
type Base struct {
	market *market.Market
}

// NewBase creates a new base handler for the given market session.
func NewBase(m *market.Market) *Base {
	return &Base{market: m}
}

// WriteJSON writes a JSON response with the given status code.
func (b *Base) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error response with the given status code.
func (b *Base) WriteError(w http.ResponseWriter, status int, err dto.APIError) {
	b.WriteJSON(w, status, err)
}
