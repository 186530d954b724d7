package handlers

import (
	"fmt"
	"net/http"

	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/storage"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

// SessionHandler serves the buyer's ledger, the settlement summary, and
// aggregate statistics.
type SessionHandler struct {
	*Base
	repo storage.Repository
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(m *market.Market, repo storage.Repository) *SessionHandler {
	return &SessionHandler{Base: NewBase(m), repo: repo}
}

// Ledger handles GET /api/ledger - the buyer's running purchase record.
func (h *SessionHandler) Ledger(w http.ResponseWriter, _ *http.Request) {
	records := h.market.Records()

	response := dto.LedgerResponse{
		Buyer:     h.market.Buyer(),
		Purchases: make([]dto.PurchaseResponse, 0, len(records)),
	}
	for _, rec := range records {
		response.Purchases = append(response.Purchases, toPurchaseResponse(rec))
		if rec.TotalPrice < 0 {
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("record %s has a negative price and is excluded from the total", rec.ID))
			continue
		}
		response.TotalCost += rec.TotalPrice
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Settlement handles GET /api/settlement - the session total, including the
// broker fee when a broker is configured.
func (h *SessionHandler) Settlement(w http.ResponseWriter, _ *http.Request) {
	s := h.market.Settle()

	response := dto.SettlementResponse{
		SessionID:  s.SessionID,
		Buyer:      s.Buyer,
		BookTotal:  s.BookTotal,
		BrokerName: s.BrokerName,
		BrokerFee:  s.BrokerFee,
		GrandTotal: s.GrandTotal,
	}
	for _, rec := range s.Anomalies {
		response.Warnings = append(response.Warnings,
			fmt.Sprintf("record %s has a negative price and is excluded from the total", rec.ID))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Stats handles GET /api/stats - aggregate purchase statistics.
func (h *SessionHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	stats, err := h.repo.GetStats()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.StatsResponse{
		TotalPurchases: stats.TotalPurchases,
		TotalAmount:    stats.TotalAmount,
		SellerStats:    make(map[string]dto.SellerStatsResponse, len(stats.SellerStats)),
	}
	for name, ss := range stats.SellerStats {
		response.SellerStats[name] = dto.SellerStatsResponse{
			Count:       ss.Count,
			TotalAmount: ss.TotalAmount,
		}
	}

	h.WriteJSON(w, http.StatusOK, response)
}
