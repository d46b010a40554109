// Package sale coordinates one sale end-to-end: the ledger sell, the
// payment method, the receipt artifact and the simulated customer
// notification.
package sale

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/esquina/pos/internal/inventory"
	"github.com/esquina/pos/internal/payment"
	"github.com/esquina/pos/internal/receipt"
)

// Facade is the single entry point for receipt-backed sales.
type Facade struct {
	ledger   *inventory.Ledger
	receipts *receipt.Generator
	logger   *slog.Logger
}

// Checkout summarizes a completed sale.
type Checkout struct {
	Sale        *inventory.Sale
	ProductName string
	Receipt     *receipt.Receipt
}

func NewFacade(ledger *inventory.Ledger, receipts *receipt.Generator, logger *slog.Logger) *Facade {
	return &Facade{
		ledger:   ledger,
		receipts: receipts,
		logger:   logger,
	}
}

// Checkout sells the product, emits a receipt labeled with the payment
// method and logs the payment summary and the simulated receipt email.
// A failed sell aborts before any receipt or notification side effect.
// A low-stock listener failure does not undo the sale; it is logged and
// the checkout completes.
func (f *Facade) Checkout(code string, quantity int, method payment.Method) (*Checkout, error) {
	if method == nil {
		return nil, payment.ErrMethodRequired
	}

	s, err := f.ledger.Sell(code, quantity)
	if err != nil {
		var notifyErr *inventory.NotifyError
		if !errors.As(err, &notifyErr) {
			return nil, fmt.Errorf("sell %s: %w", code, err)
		}
		f.logger.Error("low-stock notification failed, sale stands",
			slog.String("code", code), slog.Any("error", err))
	}

	name := f.ledger.NameOf(code)
	rec, err := f.receipts.Generate(receipt.Data{
		ProductName:  name,
		Quantity:     s.Quantity,
		UnitPrice:    f.ledger.PriceOf(code),
		Total:        s.Amount,
		PaymentLabel: method.Label(),
	})
	if err != nil {
		// The stock decrement already happened; report that the sale
		// went through without its receipt.
		return nil, fmt.Errorf("sale recorded but receipt failed: %w", err)
	}

	f.logger.Info("payment processed", slog.String("detail", method.Describe(s.Amount)))
	f.logger.Info("receipt emailed", slog.String("transaction", rec.TransactionID))

	return &Checkout{
		Sale:        s,
		ProductName: name,
		Receipt:     rec,
	}, nil
}
