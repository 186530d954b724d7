package storage

import "sync"

// MemoryRepository is the in-memory Repository implementation. It is safe
// for concurrent use by the HTTP handlers and the market service.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows []*PurchaseRow

	// Error injection for testing error paths.
	SaveErr error
	ListErr error
}

// Compile-time check that MemoryRepository implements Repository.
var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SavePurchase appends a copy of the row.
func (m *MemoryRepository) SavePurchase(row *PurchaseRow) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *row
	m.rows = append(m.rows, &copied)
	return nil
}

// ListPurchases returns copies of all rows in insertion order.
func (m *MemoryRepository) ListPurchases() ([]*PurchaseRow, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*PurchaseRow, 0, len(m.rows))
	for _, row := range m.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

// GetStats aggregates the stored purchases. Negative totals are excluded
// from amounts, matching the ledger's anomaly policy.
func (m *MemoryRepository) GetStats() (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &Stats{SellerStats: make(map[string]SellerStats)}
	for _, row := range m.rows {
		stats.TotalPurchases++

		ss := stats.SellerStats[row.Seller]
		ss.Count++
		if row.TotalPrice >= 0 {
			stats.TotalAmount += row.TotalPrice
			ss.TotalAmount += row.TotalPrice
		}
		stats.SellerStats[row.Seller] = ss
	}
	return stats, nil
}

// Close does nothing for the in-memory store.
func (m *MemoryRepository) Close() error {
	return nil
}
