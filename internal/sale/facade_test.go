package sale

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/esquina/pos/internal/inventory"
	"github.com/esquina/pos/internal/payment"
	"github.com/esquina/pos/internal/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestFacade(t *testing.T, records ...inventory.Record) (*Facade, *inventory.Ledger, string) {
	t.Helper()
	ledger := inventory.NewLedger(testLogger(), inventory.DefaultLowStockThreshold)
	ledger.Load(records)
	receiptPath := filepath.Join(t.TempDir(), "last_receipt.txt")
	facade := NewFacade(ledger, receipt.NewGenerator(receiptPath), testLogger())
	return facade, ledger, receiptPath
}

func Test_Facade_Checkout(t *testing.T) {
	// given
	facade, ledger, receiptPath := newTestFacade(t,
		inventory.Record{Code: "A001", Name: "Widget", UnitPrice: 10.00, Quantity: 8})

	// when
	checkout, err := facade.Checkout("A001", 5, payment.Credit{})

	// then
	require.NoError(t, err)
	assert.Equal(t, "Widget", checkout.ProductName)
	assert.Equal(t, 50.00, checkout.Sale.Amount)
	assert.Equal(t, 3, ledger.List()[0].Quantity)
	assert.NotEmpty(t, checkout.Receipt.TransactionID)

	content, readErr := os.ReadFile(receiptPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "Widget")
	assert.Contains(t, string(content), "Payment method: Credit")
}

func Test_Facade_Checkout_SellFailureEmitsNothing(t *testing.T) {
	testCases := []struct {
		name        string
		code        string
		quantity    int
		expectError error
	}{
		{name: "insufficient stock", code: "A001", quantity: 99, expectError: inventory.ErrInsufficientStock},
		{name: "unknown product", code: "B999", quantity: 1, expectError: inventory.ErrProductNotFound},
		{name: "invalid quantity", code: "A001", quantity: 0, expectError: inventory.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			facade, ledger, receiptPath := newTestFacade(t,
				inventory.Record{Code: "A001", Name: "Widget", UnitPrice: 10.00, Quantity: 8})
			// when
			checkout, err := facade.Checkout(tc.code, tc.quantity, payment.Cash{})
			// then the sale aborted before any side effect
			assert.ErrorIs(t, err, tc.expectError)
			assert.Nil(t, checkout)
			assert.Equal(t, 8, ledger.List()[0].Quantity)
			assert.NoFileExists(t, receiptPath)
		})
	}
}

func Test_Facade_Checkout_NilMethod(t *testing.T) {
	facade, ledger, receiptPath := newTestFacade(t,
		inventory.Record{Code: "A001", Name: "Widget", UnitPrice: 10.00, Quantity: 8})

	checkout, err := facade.Checkout("A001", 1, nil)

	assert.ErrorIs(t, err, payment.ErrMethodRequired)
	assert.Nil(t, checkout)
	assert.Equal(t, 8, ledger.List()[0].Quantity)
	assert.NoFileExists(t, receiptPath)
}

// A listener failure must not abort the checkout: the stock decrement
// already happened, so the receipt is still emitted.
func Test_Facade_Checkout_ListenerFailureKeepsSale(t *testing.T) {
	facade, ledger, receiptPath := newTestFacade(t,
		inventory.Record{Code: "A001", Name: "Widget", UnitPrice: 10.00, Quantity: 5})
	ledger.Subscribe("broken", failingListener{})

	checkout, err := facade.Checkout("A001", 2, payment.Cash{})

	require.NoError(t, err)
	assert.Equal(t, 3, ledger.List()[0].Quantity)
	assert.FileExists(t, receiptPath)
	assert.Equal(t, 20.00, checkout.Sale.Amount)
}

type failingListener struct{}

func (failingListener) Update(string) error {
	return assert.AnError
}
