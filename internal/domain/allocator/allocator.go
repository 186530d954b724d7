// Package allocator selects the cheapest fulfillable offer across sellers.
//
// The engine probes every seller's catalog with a read-only quote, filters
// out sellers that cannot cover the full quantity, and picks the seller with
// the strictly smallest total price. On exact ties the first seller in input
// order wins, which keeps allocation deterministic without relying on sort
// stability. Only the winning seller's catalog is mutated.
package allocator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/openmarket-labs/bookmarket/internal/domain/catalog"
)

// ErrNoOffer is returned when no seller can fulfill the request. Offers are
// computed per seller; stock is never split across sellers, so a request no
// single seller can cover fails even if combined stock would suffice.
var ErrNoOffer = errors.New("no seller can fulfill the request")

// Allocation is the outcome of a successful purchase request.
type Allocation struct {
	Seller     *catalog.Seller
	Title      string
	Quantity   int
	TotalPrice float64
}

// Engine runs the probe-then-commit allocation sequence.
//
// The engine itself holds no locks; callers that accept concurrent requests
// must serialize Allocate per seller set, since a stale probe followed by a
// delayed commit could oversell stock.
type Engine struct {
	logger *slog.Logger
}

// New creates an allocation engine. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Allocate finds the cheapest seller able to supply qty units of title,
// commits the purchase against that seller's catalog, and returns the
// resulting allocation. Quantities below 1 are treated as 1.
func (e *Engine) Allocate(sellers []*catalog.Seller, title string, qty int) (*Allocation, error) {
	if qty < 1 {
		qty = 1
	}

	var (
		winner    *catalog.Seller
		bestPrice float64
		probed    int
	)
	for _, s := range sellers {
		price, ok := s.Catalog.Quote(title, qty)
		if !ok {
			continue
		}
		probed++
		// Strict < keeps the first seller in input order on exact ties.
		if winner == nil || price < bestPrice {
			winner = s
			bestPrice = price
		}
	}

	if winner == nil {
		e.logger.Debug("no offer", "title", title, "quantity", qty)
		return nil, ErrNoOffer
	}

	consumed, err := winner.Catalog.Commit(title, qty)
	if err != nil {
		// Quote promised the quantity, so a failing commit means the catalog
		// changed between probe and commit.
		return nil, fmt.Errorf("commit on seller %s: %w", winner.Name, err)
	}

	e.logger.Info("allocated purchase",
		"title", title,
		"quantity", consumed,
		"seller", winner.Name,
		"total_price", bestPrice,
		"candidates", probed,
	)

	return &Allocation{
		Seller:     winner,
		Title:      title,
		Quantity:   consumed,
		TotalPrice: bestPrice,
	}, nil
}
