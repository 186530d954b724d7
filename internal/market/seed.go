package market

import (
	"github.com/openmarket-labs/bookmarket/internal/domain/catalog"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/config"
)

// DefaultSellers returns the built-in sample catalogs used when no sellers
// are configured.
func DefaultSellers() []*catalog.Seller {
	return []*catalog.Seller{
		catalog.NewSeller("Seller1",
			catalog.StockEntry{Title: "Book1", UnitPrice: 20.0, Quantity: 3},
			catalog.StockEntry{Title: "Book2", UnitPrice: 15.0, Quantity: 2},
			catalog.StockEntry{Title: "Book3", UnitPrice: 18.0, Quantity: 4},
		),
		catalog.NewSeller("Seller2",
			catalog.StockEntry{Title: "Book2", UnitPrice: 17.5, Quantity: 1},
			catalog.StockEntry{Title: "Book4", UnitPrice: 22.0, Quantity: 5},
			catalog.StockEntry{Title: "Book5", UnitPrice: 19.0, Quantity: 3},
		),
		catalog.NewSeller("Seller3",
			catalog.StockEntry{Title: "Book1", UnitPrice: 16.0, Quantity: 2},
			catalog.StockEntry{Title: "Book4", UnitPrice: 21.5, Quantity: 1},
			catalog.StockEntry{Title: "Book6", UnitPrice: 25.0, Quantity: 6},
		),
		catalog.NewSeller("Seller4",
			catalog.StockEntry{Title: "Book7", UnitPrice: 30.0, Quantity: 8},
			catalog.StockEntry{Title: "Book8", UnitPrice: 18.0, Quantity: 3},
			catalog.StockEntry{Title: "Book9", UnitPrice: 22.5, Quantity: 2},
		),
	}
}

// SellersFromConfig builds sellers from the config seed, falling back to
// DefaultSellers when the config lists none.
func SellersFromConfig(cfg config.MarketConfig) []*catalog.Seller {
	if len(cfg.Sellers) == 0 {
		return DefaultSellers()
	}

	sellers := make([]*catalog.Seller, 0, len(cfg.Sellers))
	for _, sc := range cfg.Sellers {
		entries := make([]catalog.StockEntry, 0, len(sc.Catalog))
		for _, ec := range sc.Catalog {
			entries = append(entries, catalog.StockEntry{
				Title:     ec.Title,
				UnitPrice: ec.UnitPrice,
				Quantity:  ec.Quantity,
			})
		}
		sellers = append(sellers, catalog.NewSeller(sc.Name, entries...))
	}
	return sellers
}
