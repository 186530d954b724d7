// Package catalog provides seller stock and offer computation over it.
//
// A Catalog is an ordered list of stock entries owned by a single seller.
// Quoting is a read-only greedy scan over the entries; committing consumes
// stock in the same traversal order, so a quote followed by a commit for the
// same request is always consistent.
package catalog

import (
	"errors"
	"strings"
)

// ErrInsufficientStock is returned by Commit when the catalog cannot cover
// the full requested quantity. The catalog is left untouched in that case.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockEntry is a priced, quantity-limited line in a seller's catalog.
// Titles are matched case-insensitively. Duplicate titles are legal and are
// consumed in catalog order.
type StockEntry struct {
	Title     string  `json:"title" yaml:"title"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
}

// Catalog is an ordered sequence of stock entries.
type Catalog []StockEntry

// Seller owns a catalog. Sellers are never destroyed during a session; only
// their stock quantities change, and only through Commit.
type Seller struct {
	Name    string
	Catalog Catalog
}

// NewSeller creates a seller with a copy of the given entries, so the caller
// cannot mutate the catalog behind the seller's back.
func NewSeller(name string, entries ...StockEntry) *Seller {
	c := make(Catalog, len(entries))
	copy(c, entries)
	return &Seller{Name: name, Catalog: c}
}

// Quote computes the total price for qty units of title, consuming matching
// entries greedily in catalog order. It never mutates the catalog, which
// makes repeated probing across sellers safe before any commitment.
//
// ok is false when the seller cannot supply the full quantity. The flag is
// explicit because a total of 0 (a free item) is a valid fulfilled offer.
func (c Catalog) Quote(title string, qty int) (total float64, ok bool) {
	if qty < 1 {
		return 0, false
	}

	remaining := qty
	for _, e := range c {
		if !strings.EqualFold(e.Title, title) || e.Quantity <= 0 {
			continue
		}

		n := min(e.Quantity, remaining)
		total += float64(n) * e.UnitPrice
		remaining -= n

		if remaining == 0 {
			break
		}
	}

	if remaining > 0 {
		return 0, false
	}
	return total, true
}

// Stock returns the total quantity on hand for title across all entries.
func (c Catalog) Stock(title string) int {
	var n int
	for _, e := range c {
		if strings.EqualFold(e.Title, title) {
			n += e.Quantity
		}
	}
	return n
}

// Commit decrements stock for qty units of title, walking entries in the
// same order as Quote. It returns the number of units consumed.
//
// When the catalog cannot cover the full quantity the commit fails with
// ErrInsufficientStock and nothing is consumed, rather than silently
// performing a partial fulfillment.
func (c Catalog) Commit(title string, qty int) (int, error) {
	if qty < 1 {
		return 0, ErrInsufficientStock
	}
	if c.Stock(title) < qty {
		return 0, ErrInsufficientStock
	}

	remaining := qty
	for i := range c {
		if !strings.EqualFold(c[i].Title, title) || c[i].Quantity <= 0 {
			continue
		}

		n := min(c[i].Quantity, remaining)
		c[i].Quantity -= n
		remaining -= n

		if remaining == 0 {
			break
		}
	}

	return qty - remaining, nil
}

// Clone returns a deep copy of the catalog, useful for snapshot listings.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
