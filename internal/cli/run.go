package cli

import (
	"fmt"
	"io"

	"github.com/openmarket-labs/bookmarket/internal/domain/catalog"
	"github.com/openmarket-labs/bookmarket/internal/domain/ledger"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/config"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/logging"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/storage"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

const stopWord = "exit"

// RunFlags holds the CLI flags for the run command.
type RunFlags struct {
	WithBroker bool
	Verbose    bool
}

// RunSession drives one interactive buyer session from in to out.
//
// The session follows the classic flow: optionally show the catalogs, read
// the buyer (and broker) identities, loop purchase requests until the stop
// word, then print the settlement summary and the updated catalogs.
func RunSession(cfg *config.Config, flags RunFlags, in io.Reader, out io.Writer) error {
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "market")

	prompter := NewPrompter(in, out)
	sellers := market.SellersFromConfig(cfg.Market)

	showCatalogs, err := prompter.ReadYesNo("Do you want to see the catalogs? (yes/no): ")
	if err != nil {
		return err
	}
	if showCatalogs {
		printCatalogs(out, listingsOf(sellers))
	}

	buyer := cfg.Market.Buyer
	if buyer == "" {
		buyer, err = prompter.ReadName("Enter the name of the Buyer: ")
		if err != nil {
			return err
		}
	} else {
		buyer = NormalizeName(buyer)
	}

	broker, err := readBroker(cfg.Broker, flags, prompter)
	if err != nil {
		return err
	}

	m := market.New(market.Config{
		Buyer:      buyer,
		Sellers:    sellers,
		Broker:     broker,
		Repository: storage.NewMemoryRepository(),
		Logger:     logger,
	})

	if err := purchaseLoop(m, prompter, out); err != nil {
		return err
	}

	printSummary(out, m)
	return nil
}

// readBroker resolves the broker from config or prompts, or returns nil for
// a broker-less session.
func readBroker(cfg config.BrokerConfig, flags RunFlags, prompter *Prompter) (*ledger.Broker, error) {
	if !flags.WithBroker && !cfg.Enabled {
		return nil, nil
	}

	name := cfg.Name
	fee := cfg.FlatFee

	if name == "" {
		var err error
		name, err = prompter.ReadName("Enter the name of the Broker: ")
		if err != nil {
			return nil, err
		}
		fee, err = prompter.ReadFee("Enter the broker cost: £")
		if err != nil {
			return nil, err
		}
	}

	return &ledger.Broker{Name: name, FlatFee: fee}, nil
}

// purchaseLoop reads purchase requests until the stop word or end of input.
// Each request is for one unit; an unfulfillable request is reported and the
// loop continues.
func purchaseLoop(m *market.Market, prompter *Prompter, out io.Writer) error {
	prompt := fmt.Sprintf("Enter the target book for purchase (type '%s' to stop): ", stopWord)
	for {
		title, done, err := prompter.ReadRequest(prompt, stopWord)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if title == "" {
			continue
		}

		rec, err := m.Purchase(title, 1)
		if err != nil {
			fmt.Fprintln(out, "Book not available in any catalog.")
			continue
		}

		fmt.Fprintf(out, "%s purchased %d copy of %s from:\n", m.Buyer(), rec.Quantity, rec.Title)
		fmt.Fprintf(out, " - %s for £%g\n", rec.Seller, rec.TotalPrice)
	}
}

// listingsOf snapshots catalogs for display before a session exists.
func listingsOf(sellers []*catalog.Seller) []market.SellerListing {
	out := make([]market.SellerListing, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, market.SellerListing{Name: s.Name, Catalog: s.Catalog.Clone()})
	}
	return out
}

// printCatalogs writes every seller's catalog listing.
func printCatalogs(out io.Writer, listings []market.SellerListing) {
	for _, l := range listings {
		fmt.Fprintf(out, "Catalog for Seller %s:\n", l.Name)
		for _, e := range l.Catalog {
			fmt.Fprintf(out, "%s - Price: £%g - Quantity: %d\n", e.Title, e.UnitPrice, e.Quantity)
		}
		fmt.Fprintln(out)
	}
}

// printSummary writes the purchased books, the settlement totals, and the
// updated catalogs.
func printSummary(out io.Writer, m *market.Market) {
	fmt.Fprintf(out, "\nPurchased books by %s:\n", m.Buyer())
	for _, rec := range m.Records() {
		fmt.Fprintf(out, "%s - Price: £%g - Quantity: %d\n", rec.Title, rec.TotalPrice, rec.Quantity)
		if rec.TotalPrice < 0 {
			fmt.Fprintf(out, "  (warning: negative price, excluded from total)\n")
		}
	}

	s := m.Settle()
	fmt.Fprintf(out, "Total Book Cost: £%g\n", s.BookTotal)
	if m.Broker() != nil {
		fmt.Fprintf(out, "\nTotal Book Cost for %s: £%g\n", s.Buyer, s.BookTotal)
		fmt.Fprintf(out, "Total Cost for %s (including broker cost): £%g\n", s.Buyer, s.GrandTotal)
	}

	fmt.Fprintln(out, "\nUpdated Catalogs after purchase:")
	printCatalogs(out, m.Listings())
}
