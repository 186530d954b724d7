package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openmarket-labs/bookmarket/internal/api/dto"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

// CatalogsHandler serves seller catalog listings.
type CatalogsHandler struct {
	*Base
}

// NewCatalogsHandler creates a new catalogs handler.
func NewCatalogsHandler(m *market.Market) *CatalogsHandler {
	return &CatalogsHandler{Base: NewBase(m)}
}

// List handles GET /api/catalogs - returns every seller's catalog.
func (h *CatalogsHandler) List(w http.ResponseWriter, _ *http.Request) {
	listings := h.market.Listings()

	response := dto.CatalogListResponse{
		Catalogs: make([]dto.CatalogResponse, 0, len(listings)),
		Count:    len(listings),
	}
	for _, l := range listings {
		response.Catalogs = append(response.Catalogs, toCatalogResponse(l))
	}

	h.WriteJSON(w, http.StatusOK, response)
}

// Get handles GET /api/catalogs/{seller} - returns a single seller's catalog.
func (h *CatalogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "seller")
	if name == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("seller name is required"))
		return
	}

	listing, err := h.market.Listing(name)
	if err != nil {
		h.WriteError(w, http.StatusNotFound, dto.NotFoundError("seller"))
		return
	}

	h.WriteJSON(w, http.StatusOK, toCatalogResponse(listing))
}

// toCatalogResponse converts a market listing to an API response.
func toCatalogResponse(l market.SellerListing) dto.CatalogResponse {
	response := dto.CatalogResponse{
		Seller:  l.Name,
		Entries: make([]dto.StockEntryResponse, 0, len(l.Catalog)),
	}
	for _, e := range l.Catalog {
		response.Entries = append(response.Entries, dto.StockEntryResponse{
			Title:     e.Title,
			UnitPrice: e.UnitPrice,
			Quantity:  e.Quantity,
		})
	}
	return response
}
