// Package fuel implements the gas-station charge ledger. Unlike the
// product ledger there is no standing stock to deplete; the ledger only
// records that a charge happened, in an append-only history.
package fuel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/esquina/pos/internal/payment"
)

var (
	ErrInvalidCharge       = errors.New("charge volume and unit price must be positive")
	ErrInsufficientPayment = errors.New("payment does not cover the charge total")
)

// Charge is one recorded fuel charge. Records are never mutated after
// creation, only appended or bulk-replaced on load.
type Charge struct {
	Liters     float64
	FuelType   string
	UnitPrice  float64
	AmountPaid float64
}

// Ledger records fuel charges. Not safe for concurrent use.
type Ledger struct {
	history []Charge
	logger  *slog.Logger
}

func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Load replaces the full charge history with the given records.
func (l *Ledger) Load(charges []Charge) {
	l.history = append([]Charge(nil), charges...)
}

// ValidatePayment reports whether amountPaid covers liters at unitPrice.
func (l *Ledger) ValidatePayment(liters, unitPrice, amountPaid float64) bool {
	return amountPaid >= liters*unitPrice
}

// RegisterCharge computes the expected total, lets the payment method
// apply its surcharge, validates the charged amount and appends the
// charge to the history. Rejection is all-or-nothing: on any error
// nothing is appended.
func (l *Ledger) RegisterCharge(liters float64, fuelType string, unitPrice float64, method payment.Method) (*Charge, error) {
	if method == nil {
		return nil, payment.ErrMethodRequired
	}
	if liters <= 0 || unitPrice <= 0 || fuelType == "" {
		return nil, ErrInvalidCharge
	}

	expected := liters * unitPrice
	charged := method.Apply(expected)
	l.logger.Info("processing fuel charge",
		slog.Float64("expected", expected),
		slog.String("payment", method.Describe(charged)))

	if !l.ValidatePayment(liters, unitPrice, charged) {
		return nil, fmt.Errorf("charged %.2f for a %.2f total: %w", charged, expected, ErrInsufficientPayment)
	}

	charge := Charge{
		Liters:     liters,
		FuelType:   fuelType,
		UnitPrice:  unitPrice,
		AmountPaid: charged,
	}
	l.history = append(l.history, charge)
	return &charge, nil
}

// History returns a read-only copy of the charge history in record order.
func (l *Ledger) History() []Charge {
	return append([]Charge(nil), l.history...)
}
