package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmarket-labs/bookmarket/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.LoadFromEnv()
	cfg.Observability.Logging.Level = "error"
	return cfg
}

func TestRunSession_WithoutBroker(t *testing.T) {
	// Scripted session: skip catalogs, buyer Alice, buy book1 twice, one
	// unknown title, then stop.
	script := strings.Join([]string{
		"no",
		"Alice",
		"book1",
		"Book42",
		"book1",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := RunSession(testConfig(), RunFlags{}, strings.NewReader(script), &out)

	require.NoError(t, err)
	got := out.String()

	// Both Book1 copies come from Seller3 at 16.0 each
	assert.Contains(t, got, "ALICE purchased 1 copy of BOOK1 from:")
	assert.Contains(t, got, " - Seller3 for £16")
	assert.Contains(t, got, "Book not available in any catalog.")
	assert.Contains(t, got, "Total Book Cost: £32")
	// No broker lines in a broker-less session
	assert.NotContains(t, got, "including broker cost")
	// Updated catalogs show Seller3 drained of Book1
	assert.Contains(t, got, "Updated Catalogs after purchase:")
	assert.Contains(t, got, "Book1 - Price: £16 - Quantity: 0")
}

func TestRunSession_WithBroker(t *testing.T) {
	script := strings.Join([]string{
		"no",
		"Alice",
		"Hermes & Co",
		"5.0",
		"book1",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := RunSession(testConfig(), RunFlags{WithBroker: true}, strings.NewReader(script), &out)

	require.NoError(t, err)
	got := out.String()

	assert.Contains(t, got, "Total Book Cost for ALICE: £16")
	assert.Contains(t, got, "Total Cost for ALICE (including broker cost): £21")
}

func TestRunSession_BrokerFeeWaivedWithoutPurchases(t *testing.T) {
	script := strings.Join([]string{
		"no",
		"Alice",
		"Hermes",
		"5.0",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := RunSession(testConfig(), RunFlags{WithBroker: true}, strings.NewReader(script), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Total Cost for ALICE (including broker cost): £0")
}

func TestRunSession_ShowsCatalogsOnRequest(t *testing.T) {
	script := "yes\nAlice\nexit\n"

	var out bytes.Buffer
	err := RunSession(testConfig(), RunFlags{}, strings.NewReader(script), &out)

	require.NoError(t, err)
	got := out.String()

	assert.Contains(t, got, "Catalog for Seller Seller1:")
	assert.Contains(t, got, "Book1 - Price: £20 - Quantity: 3")
	assert.Contains(t, got, "Catalog for Seller Seller4:")
}

func TestRunSession_EOFEndsGracefully(t *testing.T) {
	// Stream ends right after the buyer name; the session still settles.
	script := "no\nAlice\n"

	var out bytes.Buffer
	err := RunSession(testConfig(), RunFlags{}, strings.NewReader(script), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Total Book Cost: £0")
}
