// Package payment implements the interchangeable payment methods accepted
// at the register. Each method converts a base amount into the final
// charged amount and labels itself for receipts.
package payment

import (
	"errors"
	"fmt"
)

// ErrMethodRequired is returned when an operation that charges a customer
// is invoked without a payment method.
var ErrMethodRequired = errors.New("payment method is required")

// CreditSurchargeRate is the fee added on top of credit card payments.
const CreditSurchargeRate = 0.05

// Method converts a base amount into the final charged amount.
// Implementations are pure and stateless.
type Method interface {
	// Apply returns the final amount to charge, including any surcharge.
	Apply(amount float64) float64

	// Describe returns a human-readable summary of a processed payment.
	Describe(amount float64) string

	// Label returns the short receipt label for the method.
	Label() string
}

// Cash charges exactly the base amount.
type Cash struct{}

func (Cash) Apply(amount float64) float64 { return amount }

func (Cash) Describe(amount float64) string {
	return fmt.Sprintf("paid $%.2f in cash", amount)
}

func (Cash) Label() string { return "Cash" }

// Debit charges exactly the base amount.
type Debit struct{}

func (Debit) Apply(amount float64) float64 { return amount }

func (Debit) Describe(amount float64) string {
	return fmt.Sprintf("paid $%.2f by debit card", amount)
}

func (Debit) Label() string { return "Debit" }

// Credit adds a fixed surcharge to the base amount.
type Credit struct{}

func (Credit) Apply(amount float64) float64 {
	return amount * (1 + CreditSurchargeRate)
}

func (Credit) Describe(amount float64) string {
	return fmt.Sprintf("paid $%.2f by credit card (%.0f%% surcharge applied)", amount, CreditSurchargeRate*100)
}

func (Credit) Label() string { return "Credit" }

// ForOption maps a menu option to a payment method.
// Returns ErrMethodRequired for unknown options.
func ForOption(option int) (Method, error) {
	switch option {
	case 1:
		return Cash{}, nil
	case 2:
		return Debit{}, nil
	case 3:
		return Credit{}, nil
	default:
		return nil, fmt.Errorf("unknown payment option %d: %w", option, ErrMethodRequired)
	}
}
