package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_CaseInsensitiveMatch(t *testing.T) {
	// Arrange
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 3},
	}

	// Act
	total, ok := c.Quote("book1", 1)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, 20.0, total)
}

func TestQuote_DoesNotMutateCatalog(t *testing.T) {
	// Arrange
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 3},
		{Title: "Book2", UnitPrice: 15.0, Quantity: 2},
	}

	// Act - probe twice
	total1, ok1 := c.Quote("Book1", 2)
	total2, ok2 := c.Quote("Book1", 2)

	// Assert - identical results, quantities untouched
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, total1, total2)
	assert.Equal(t, 3, c[0].Quantity)
	assert.Equal(t, 2, c[1].Quantity)
}

func TestQuote_DuplicateTitlesConsumedInOrder(t *testing.T) {
	// Two entries for the same title at different prices; the greedy scan
	// takes the first entry's stock before touching the second.
	c := Catalog{
		{Title: "Book1", UnitPrice: 10.0, Quantity: 2},
		{Title: "Book1", UnitPrice: 30.0, Quantity: 5},
	}

	total, ok := c.Quote("Book1", 3)

	assert.True(t, ok)
	assert.Equal(t, 2*10.0+1*30.0, total)
}

func TestQuote_CannotFulfill(t *testing.T) {
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 2},
	}

	_, ok := c.Quote("Book1", 3)
	assert.False(t, ok)

	_, ok = c.Quote("Book9", 1)
	assert.False(t, ok)
}

func TestQuote_ZeroPriceIsFulfilled(t *testing.T) {
	// A free item is a valid offer; the ok flag must distinguish it from
	// "cannot fulfill".
	c := Catalog{
		{Title: "Freebie", UnitPrice: 0.0, Quantity: 1},
	}

	total, ok := c.Quote("freebie", 1)

	assert.True(t, ok)
	assert.Equal(t, 0.0, total)
}

func TestQuote_InvalidQuantity(t *testing.T) {
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 3},
	}

	_, ok := c.Quote("Book1", 0)
	assert.False(t, ok)
}

func TestCommit_ConsistentWithQuote(t *testing.T) {
	// Arrange
	c := Catalog{
		{Title: "Book1", UnitPrice: 10.0, Quantity: 2},
		{Title: "Book1", UnitPrice: 30.0, Quantity: 5},
	}
	quoted, ok := c.Quote("Book1", 3)
	require.True(t, ok)

	// Act
	consumed, err := c.Commit("Book1", 3)

	// Assert - stock reduced by exactly the quoted quantity, and the next
	// quote reflects the reduced stock.
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, 0, c[0].Quantity)
	assert.Equal(t, 4, c[1].Quantity)
	assert.Equal(t, 2*10.0+1*30.0, quoted)

	next, ok := c.Quote("Book1", 4)
	require.True(t, ok)
	assert.Equal(t, 4*30.0, next)
}

func TestCommit_InsufficientStockLeavesCatalogUntouched(t *testing.T) {
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 2},
	}

	consumed, err := c.Commit("Book1", 3)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 2, c[0].Quantity)
}

func TestCommit_QuantityNeverGoesNegative(t *testing.T) {
	c := Catalog{
		{Title: "Book1", UnitPrice: 20.0, Quantity: 1},
	}

	_, err := c.Commit("Book1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c[0].Quantity)

	_, err = c.Commit("Book1", 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, c[0].Quantity)
}

func TestStock_SumsAcrossDuplicates(t *testing.T) {
	c := Catalog{
		{Title: "Book1", UnitPrice: 10.0, Quantity: 2},
		{Title: "Book2", UnitPrice: 15.0, Quantity: 1},
		{Title: "book1", UnitPrice: 30.0, Quantity: 5},
	}

	assert.Equal(t, 7, c.Stock("BOOK1"))
	assert.Equal(t, 0, c.Stock("Book9"))
}

func TestNewSeller_CopiesEntries(t *testing.T) {
	entries := []StockEntry{{Title: "Book1", UnitPrice: 20.0, Quantity: 3}}
	s := NewSeller("Seller1", entries...)

	entries[0].Quantity = 99

	assert.Equal(t, 3, s.Catalog[0].Quantity)
}
