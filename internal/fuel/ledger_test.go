package fuel

import (
	"io"
	"log/slog"
	"testing"

	"github.com/esquina/pos/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// shortPay underpays by a fixed amount to exercise payment rejection.
type shortPay struct{}

func (shortPay) Apply(amount float64) float64 { return amount - 1 }
func (shortPay) Describe(float64) string      { return "short payment" }
func (shortPay) Label() string                { return "Short" }

func Test_Ledger_RegisterCharge(t *testing.T) {
	testCases := []struct {
		name        string
		liters      float64
		fuelType    string
		unitPrice   float64
		method      payment.Method
		wantPaid    float64
		wantHistory int
		expectError error
	}{
		{
			name:        "Success - cash pays the exact total",
			liters:      10,
			fuelType:    "Magna",
			unitPrice:   22.50,
			method:      payment.Cash{},
			wantPaid:    225.00,
			wantHistory: 1,
		},
		{
			name:        "Success - credit surcharge is recorded as paid",
			liters:      10,
			fuelType:    "Premium",
			unitPrice:   24.00,
			method:      payment.Credit{},
			wantPaid:    252.00,
			wantHistory: 1,
		},
		{
			name:        "Error - underpayment appends nothing",
			liters:      10,
			fuelType:    "Diesel",
			unitPrice:   23.00,
			method:      shortPay{},
			expectError: ErrInsufficientPayment,
		},
		{
			name:        "Error - nil payment method",
			liters:      10,
			fuelType:    "Magna",
			unitPrice:   22.50,
			method:      nil,
			expectError: payment.ErrMethodRequired,
		},
		{
			name:        "Error - non-positive liters",
			liters:      0,
			fuelType:    "Magna",
			unitPrice:   22.50,
			method:      payment.Cash{},
			expectError: ErrInvalidCharge,
		},
		{
			name:        "Error - missing fuel type",
			liters:      10,
			fuelType:    "",
			unitPrice:   22.50,
			method:      payment.Cash{},
			expectError: ErrInvalidCharge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			ledger := NewLedger(testLogger())
			// when
			charge, err := ledger.RegisterCharge(tc.liters, tc.fuelType, tc.unitPrice, tc.method)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, charge)
				assert.Empty(t, ledger.History())
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.wantPaid, charge.AmountPaid, 1e-9)
			require.Len(t, ledger.History(), tc.wantHistory)
			assert.Equal(t, *charge, ledger.History()[0])
		})
	}
}

func Test_Ledger_ValidatePayment(t *testing.T) {
	ledger := NewLedger(testLogger())

	assert.True(t, ledger.ValidatePayment(10, 22.50, 225.00))
	assert.True(t, ledger.ValidatePayment(10, 22.50, 300.00))
	assert.False(t, ledger.ValidatePayment(10, 22.50, 224.99))
}

func Test_Ledger_HistoryIsACopy(t *testing.T) {
	ledger := NewLedger(testLogger())
	_, err := ledger.RegisterCharge(5, "Magna", 22.50, payment.Cash{})
	require.NoError(t, err)

	history := ledger.History()
	history[0].AmountPaid = 0

	assert.Equal(t, 112.50, ledger.History()[0].AmountPaid)
}

func Test_Ledger_LoadReplacesHistory(t *testing.T) {
	ledger := NewLedger(testLogger())
	_, err := ledger.RegisterCharge(5, "Magna", 22.50, payment.Cash{})
	require.NoError(t, err)

	loaded := []Charge{
		{Liters: 40, FuelType: "Diesel", UnitPrice: 23.00, AmountPaid: 920.00},
	}
	ledger.Load(loaded)

	assert.Equal(t, loaded, ledger.History())
}
