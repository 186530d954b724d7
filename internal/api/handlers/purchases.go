package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/domain/allocator"
	"github.com/openmarket-labs/bookmarket/internal/domain/ledger"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

// PurchasesHandler submits purchase requests against the market session.
type PurchasesHandler struct {
	*Base
}

// NewPurchasesHandler creates a new purchases handler.
func NewPurchasesHandler(m *market.Market) *PurchasesHandler {
	return &PurchasesHandler{Base: NewBase(m)}
}

// Create handles POST /api/purchases - allocates the request to the
// cheapest seller able to fulfill it.
func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("title is required"))
		return
	}
	if req.Quantity < 0 {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("quantity must be positive"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	rec, err := h.market.Purchase(req.Title, req.Quantity)
	if err != nil {
		if errors.Is(err, allocator.ErrNoOffer) {
			h.WriteError(w, http.StatusConflict, dto.NotAvailableError(req.Title))
			return
		}
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, toPurchaseResponse(rec))
}

// toPurchaseResponse converts a ledger record to an API response.
func toPurchaseResponse(rec ledger.PurchaseRecord) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:         rec.ID,
		Seller:     rec.Seller,
		Title:      rec.Title,
		Quantity:   rec.Quantity,
		UnitPrice:  rec.UnitPrice,
		TotalPrice: rec.TotalPrice,
	}
}
