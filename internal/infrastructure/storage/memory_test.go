package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SaveAndList(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.SavePurchase(&PurchaseRow{
		ID:          "p1",
		Buyer:       "ALICE",
		Seller:      "Seller1",
		Title:       "BOOK1",
		Quantity:    1,
		UnitPrice:   20.0,
		TotalPrice:  20.0,
		PurchasedAt: time.Now(),
	})
	require.NoError(t, err)

	rows, err := repo.ListPurchases()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BOOK1", rows[0].Title)

	// Mutating the returned row must not affect the store.
	rows[0].TotalPrice = 999.0
	rows, err = repo.ListPurchases()
	require.NoError(t, err)
	assert.Equal(t, 20.0, rows[0].TotalPrice)
}

func TestMemoryRepository_Stats(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.SavePurchase(&PurchaseRow{Seller: "Seller1", Title: "BOOK1", TotalPrice: 20.0}))
	require.NoError(t, repo.SavePurchase(&PurchaseRow{Seller: "Seller1", Title: "BOOK2", TotalPrice: 15.0}))
	require.NoError(t, repo.SavePurchase(&PurchaseRow{Seller: "Seller2", Title: "BOOK1", TotalPrice: 16.0}))
	// Anomalous row counts but does not contribute to amounts.
	require.NoError(t, repo.SavePurchase(&PurchaseRow{Seller: "Seller2", Title: "BAD", TotalPrice: -1.0}))

	stats, err := repo.GetStats()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalPurchases)
	assert.Equal(t, 51.0, stats.TotalAmount)
	assert.Equal(t, 2, stats.SellerStats["Seller1"].Count)
	assert.Equal(t, 35.0, stats.SellerStats["Seller1"].TotalAmount)
	assert.Equal(t, 16.0, stats.SellerStats["Seller2"].TotalAmount)
}

func TestMemoryRepository_ErrorInjection(t *testing.T) {
	repo := NewMemoryRepository()
	boom := errors.New("boom")
	repo.SaveErr = boom
	repo.ListErr = boom

	assert.ErrorIs(t, repo.SavePurchase(&PurchaseRow{}), boom)
	_, err := repo.ListPurchases()
	assert.ErrorIs(t, err, boom)
}
