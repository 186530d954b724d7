// Package market wires the allocation domain into a single buyer session.
//
// A Market owns the sellers, the buyer's ledger, and the optional broker.
// Purchase runs the probe-then-commit-then-record sequence under one mutex,
// so the HTTP surface can serve requests concurrently without a stale probe
// overselling stock.
package market

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openmarket-labs/bookmarket/internal/domain/allocator"
	"github.com/openmarket-labs/bookmarket/internal/domain/catalog"
	"github.com/openmarket-labs/bookmarket/internal/domain/ledger"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/storage"
)

// Config assembles a market session.
type Config struct {
	Buyer      string
	Sellers    []*catalog.Seller
	Broker     *ledger.Broker // nil: settle without brokerage
	Repository storage.Repository
	Logger     *slog.Logger
}

// Market is one buyer's marketplace session.
type Market struct {
	mu        sync.Mutex
	sessionID string
	sellers   []*catalog.Seller
	engine    *allocator.Engine
	ledger    *ledger.Ledger
	broker    *ledger.Broker
	repo      storage.Repository
	logger    *slog.Logger
}

// SellerListing is a read-only snapshot of one seller's catalog.
type SellerListing struct {
	Name    string          `json:"name"`
	Catalog catalog.Catalog `json:"catalog"`
}

// Settlement is the final total computation for the session.
type Settlement struct {
	SessionID  string                  `json:"session_id"`
	Buyer      string                  `json:"buyer"`
	BookTotal  float64                 `json:"book_total"`
	BrokerName string                  `json:"broker_name,omitempty"`
	BrokerFee  float64                 `json:"broker_fee"`
	GrandTotal float64                 `json:"grand_total"`
	Anomalies  []ledger.PurchaseRecord `json:"anomalies,omitempty"`
}

// New creates a market session. Sellers are used as given; their catalogs
// are mutated by successful purchases for the lifetime of the session.
func New(cfg Config) *Market {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	repo := cfg.Repository
	if repo == nil {
		repo = storage.NewMemoryRepository()
	}

	return &Market{
		sessionID: uuid.NewString(),
		sellers:   cfg.Sellers,
		engine:    allocator.New(logger),
		ledger:    ledger.New(cfg.Buyer),
		broker:    cfg.Broker,
		repo:      repo,
		logger:    logger,
	}
}

// SessionID returns the session identifier.
func (m *Market) SessionID() string {
	return m.sessionID
}

// Buyer returns the buyer name.
func (m *Market) Buyer() string {
	return m.ledger.Buyer()
}

// Purchase allocates qty units of title to the cheapest seller, commits the
// stock decrement, and records the purchase in the buyer's ledger. The whole
// sequence is atomic with respect to other Purchase calls.
func (m *Market) Purchase(title string, qty int) (ledger.PurchaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	alloc, err := m.engine.Allocate(m.sellers, title, qty)
	if err != nil {
		return ledger.PurchaseRecord{}, err
	}

	unitPrice := alloc.TotalPrice
	if alloc.Quantity > 0 {
		unitPrice = alloc.TotalPrice / float64(alloc.Quantity)
	}

	rec := m.ledger.Record(ledger.PurchaseRecord{
		Seller:     alloc.Seller.Name,
		Title:      alloc.Title,
		Quantity:   alloc.Quantity,
		UnitPrice:  unitPrice,
		TotalPrice: alloc.TotalPrice,
	})

	if err := m.repo.SavePurchase(&storage.PurchaseRow{
		ID:          rec.ID,
		SessionID:   m.sessionID,
		Buyer:       m.ledger.Buyer(),
		Seller:      rec.Seller,
		Title:       rec.Title,
		Quantity:    rec.Quantity,
		UnitPrice:   rec.UnitPrice,
		TotalPrice:  rec.TotalPrice,
		PurchasedAt: time.Now().UTC(),
	}); err != nil {
		// History is advisory; the purchase itself already happened.
		m.logger.Warn("failed to save purchase history", "error", err)
	}

	return rec, nil
}

// Listings returns a snapshot of every seller's catalog in input order.
func (m *Market) Listings() []SellerListing {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SellerListing, 0, len(m.sellers))
	for _, s := range m.sellers {
		out = append(out, SellerListing{Name: s.Name, Catalog: s.Catalog.Clone()})
	}
	return out
}

// Listing returns the snapshot for one seller by name.
func (m *Market) Listing(name string) (SellerListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sellers {
		if s.Name == name {
			return SellerListing{Name: s.Name, Catalog: s.Catalog.Clone()}, nil
		}
	}
	return SellerListing{}, fmt.Errorf("unknown seller %q", name)
}

// Records returns the buyer's ledger in append order.
func (m *Market) Records() []ledger.PurchaseRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledger.Records()
}

// Broker returns the session broker, or nil when settling without one.
func (m *Market) Broker() *ledger.Broker {
	return m.broker
}

// Settle computes the session's settlement summary. Settling does not close
// the session; further purchases simply change the next settlement.
func (m *Market) Settle() Settlement {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := m.ledger.TotalCost()

	s := Settlement{
		SessionID:  m.sessionID,
		Buyer:      m.ledger.Buyer(),
		BookTotal:  total,
		GrandTotal: total,
		Anomalies:  m.ledger.Anomalies(),
	}
	if m.broker != nil {
		s.BrokerName = m.broker.Name
		s.BrokerFee = m.broker.FlatFee
		s.GrandTotal = ledger.SettleWithBroker(total, m.broker.FlatFee)
		// Report the fee actually charged, honoring the zero-total waiver.
		s.BrokerFee = s.GrandTotal - s.BookTotal
	}

	if len(s.Anomalies) > 0 {
		m.logger.Warn("ledger contains anomalous records",
			"buyer", s.Buyer, "count", len(s.Anomalies))
	}

	return s
}
