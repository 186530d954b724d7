// Package storage records completed purchases for the API surface.
//
// The repository is session-scoped and in-memory: the marketplace keeps no
// state across runs, so there is no database behind it. The interface still
// exists to keep handlers testable and to leave room for other backends.
package storage

import "time"

// Repository defines the purchase history store.
type Repository interface {
	// SavePurchase appends a completed purchase.
	SavePurchase(row *PurchaseRow) error

	// ListPurchases returns all purchases in insertion order.
	ListPurchases() ([]*PurchaseRow, error)

	// GetStats returns aggregate statistics for the session.
	GetStats() (*Stats, error)

	Close() error
}

// PurchaseRow is a stored purchase.
type PurchaseRow struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Buyer       string    `json:"buyer"`
	Seller      string    `json:"seller"`
	Title       string    `json:"title"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// Stats contains aggregate purchase statistics.
type Stats struct {
	TotalPurchases int                    `json:"total_purchases"`
	TotalAmount    float64                `json:"total_amount"`
	SellerStats    map[string]SellerStats `json:"seller_stats"`
}

// SellerStats contains per-seller statistics.
type SellerStats struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}
