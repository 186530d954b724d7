package dto

import "time"

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// StockEntryResponse represents one catalog line.
type StockEntryResponse struct {
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// CatalogResponse represents one seller's catalog.
type CatalogResponse struct {
	Seller  string               `json:"seller"`
	Entries []StockEntryResponse `json:"entries"`
}

// CatalogListResponse is returned when listing all catalogs.
type CatalogListResponse struct {
	Catalogs []CatalogResponse `json:"catalogs"`
	Count    int               `json:"count"`
}

// PurchaseResponse represents a completed purchase.
type PurchaseResponse struct {
	ID         string  `json:"id"`
	Seller     string  `json:"seller"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// LedgerResponse is the buyer's running purchase record.
type LedgerResponse struct {
	Buyer     string             `json:"buyer"`
	Purchases []PurchaseResponse `json:"purchases"`
	TotalCost float64            `json:"total_cost"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// SettlementResponse is the final total computation for the session.
type SettlementResponse struct {
	SessionID  string   `json:"session_id"`
	Buyer      string   `json:"buyer"`
	BookTotal  float64  `json:"book_total"`
	BrokerName string   `json:"broker_name,omitempty"`
	BrokerFee  float64  `json:"broker_fee"`
	GrandTotal float64  `json:"grand_total"`
	Warnings   []string `json:"warnings,omitempty"`
}

// SellerStatsResponse contains per-seller purchase statistics.
type SellerStatsResponse struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// StatsResponse contains aggregate purchase statistics.
type StatsResponse struct {
	TotalPurchases int                            `json:"total_purchases"`
	TotalAmount    float64                        `json:"total_amount"`
	SellerStats    map[string]SellerStatsResponse `json:"seller_stats"`
}
