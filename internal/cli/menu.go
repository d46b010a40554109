// Package cli implements the interactive menu loop: a blocking
// read-evaluate-print cycle over stdin. Every operation runs to
// completion before the next one is accepted, and no failure is fatal to
// the loop.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/esquina/pos/internal/fuel"
	"github.com/esquina/pos/internal/inventory"
	"github.com/esquina/pos/internal/payment"
	"github.com/esquina/pos/internal/sale"
	"github.com/esquina/pos/internal/store"
)

// Menu drives the console interface over the two ledgers.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	inventory *inventory.Ledger
	fuel      *fuel.Ledger
	files     *store.FileStore
	checkout  *sale.Facade
	logger    *slog.Logger
}

func NewMenu(in io.Reader, out io.Writer, inv *inventory.Ledger, fuelLedger *fuel.Ledger,
	files *store.FileStore, checkout *sale.Facade, logger *slog.Logger) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		inventory: inv,
		fuel:      fuelLedger,
		files:     files,
		checkout:  checkout,
		logger:    logger,
	}
}

// Run shows the charge history and product list once, then loops on the
// menu until the operator exits or input ends. Exiting persists both
// ledgers.
func (m *Menu) Run() error {
	m.printHistory()
	m.printProducts()

	for {
		m.printMenu()
		option, ok := m.readInt("Select an option: ")
		if !ok {
			return m.saveAll()
		}

		switch option {
		case 1:
			m.printProducts()
		case 2:
			m.sell()
		case 3:
			m.restock()
		case 4:
			m.saveInventory()
		case 5:
			m.sellWithReceipt()
		case 6:
			m.registerCharge()
		case 7:
			m.printHistory()
		case 8:
			err := m.saveAll()
			fmt.Fprintln(m.out, "Exiting the system...")
			return err
		default:
			fmt.Fprintln(m.out, "Invalid option, try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\n-----------------------------------\n")
	fmt.Fprint(m.out, "INVENTORY & POINT OF SALE\n")
	fmt.Fprint(m.out, "1. List products\n")
	fmt.Fprint(m.out, "2. Sell product\n")
	fmt.Fprint(m.out, "3. Restock product\n")
	fmt.Fprint(m.out, "4. Save inventory\n")
	fmt.Fprint(m.out, "5. Sell with receipt\n")
	fmt.Fprint(m.out, "6. Gas station (register charge)\n")
	fmt.Fprint(m.out, "7. Gas station history\n")
	fmt.Fprint(m.out, "8. Exit\n")
	fmt.Fprint(m.out, "-----------------------------------\n")
}

func (m *Menu) printProducts() {
	products := m.inventory.List()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "(inventory is empty)")
		return
	}
	for _, p := range products {
		fmt.Fprintf(m.out, "%s - %s | $%.2f | Stock: %d\n", p.Code, p.Name, p.UnitPrice, p.Quantity)
	}
}

func (m *Menu) printHistory() {
	fmt.Fprintln(m.out, "\nFUEL CHARGE HISTORY:")
	history := m.fuel.History()
	if len(history) == 0 {
		fmt.Fprintln(m.out, "(empty)")
		return
	}
	for _, c := range history {
		fmt.Fprintf(m.out, "%.2f L | %s | $%.2f/L | Paid: $%.2f\n", c.Liters, c.FuelType, c.UnitPrice, c.AmountPaid)
	}
}

func (m *Menu) sell() {
	code, ok := m.readLine("Product code: ")
	if !ok {
		return
	}
	quantity, ok := m.readInt("Quantity to sell: ")
	if !ok {
		return
	}

	s, err := m.inventory.Sell(code, quantity)
	var notifyErr *inventory.NotifyError
	if err != nil && !errors.As(err, &notifyErr) {
		m.report(err)
		return
	}
	if notifyErr != nil {
		// Sale stands; surface the listener failure alongside the total.
		m.report(notifyErr)
	}
	fmt.Fprintf(m.out, "Sale total: $%.2f\n", s.Amount)
}

func (m *Menu) restock() {
	code, ok := m.readLine("Product code: ")
	if !ok {
		return
	}
	quantity, ok := m.readInt("Quantity to restock: ")
	if !ok {
		return
	}

	if err := m.inventory.Restock(code, quantity); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintln(m.out, "Stock updated.")
}

func (m *Menu) saveInventory() {
	if err := m.files.SaveProducts(m.inventory.Snapshot()); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintln(m.out, "Inventory saved.")
}

func (m *Menu) sellWithReceipt() {
	code, ok := m.readLine("Product code: ")
	if !ok {
		return
	}
	quantity, ok := m.readInt("Quantity to sell: ")
	if !ok {
		return
	}
	method, ok := m.readPaymentMethod()
	if !ok {
		return
	}

	checkout, err := m.checkout.Checkout(code, quantity, method)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Sold %d x %s for $%.2f (%s). Receipt written to %s\n",
		checkout.Sale.Quantity, checkout.ProductName, checkout.Sale.Amount,
		method.Label(), checkout.Receipt.Path)
}

func (m *Menu) registerCharge() {
	liters, ok := m.readFloat("Liters to charge: ")
	if !ok {
		return
	}
	fuelType, ok := m.readLine("Fuel type (Magna/Premium/Diesel): ")
	if !ok {
		return
	}
	unitPrice, ok := m.readFloat("Price per liter: ")
	if !ok {
		return
	}
	method, ok := m.readPaymentMethod()
	if !ok {
		return
	}

	charge, err := m.fuel.RegisterCharge(liters, fuelType, unitPrice, method)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Charge registered: %.2f L of %s, paid $%.2f\n",
		charge.Liters, charge.FuelType, charge.AmountPaid)
}

func (m *Menu) readPaymentMethod() (payment.Method, bool) {
	option, ok := m.readInt("Payment method: 1-Cash 2-Debit 3-Credit: ")
	if !ok {
		return nil, false
	}
	method, err := payment.ForOption(option)
	if err != nil {
		m.report(err)
		return nil, false
	}
	return method, true
}

// saveAll persists both ledgers on exit.
func (m *Menu) saveAll() error {
	if err := m.files.SaveProducts(m.inventory.Snapshot()); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	if err := m.files.SaveCharges(m.fuel.History()); err != nil {
		return fmt.Errorf("save fuel history: %w", err)
	}
	return nil
}

// report prints an operator-friendly message for a failed operation and
// returns control to the menu.
func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		fmt.Fprintln(m.out, "Product not found.")
	case errors.Is(err, inventory.ErrInsufficientStock):
		fmt.Fprintln(m.out, "Not enough stock.")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		fmt.Fprintln(m.out, "Quantity must be a positive number.")
	case errors.Is(err, payment.ErrMethodRequired):
		fmt.Fprintln(m.out, "Invalid payment method.")
	case errors.Is(err, fuel.ErrInsufficientPayment):
		fmt.Fprintln(m.out, "Payment does not cover the charge. Nothing was recorded.")
	case errors.Is(err, fuel.ErrInvalidCharge):
		fmt.Fprintln(m.out, "Liters and price per liter must be positive.")
	case errors.Is(err, store.ErrUnavailable):
		fmt.Fprintln(m.out, "Could not write the data file.")
	default:
		fmt.Fprintf(m.out, "Operation failed: %v\n", err)
	}
	m.logger.Warn("operation failed", slog.Any("error", err))
}

// readLine prompts until a non-empty line is entered. Returns false when
// input is exhausted.
func (m *Menu) readLine(prompt string) (string, bool) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			return "", false
		}
		line := strings.TrimSpace(m.in.Text())
		if line != "" {
			return line, true
		}
		fmt.Fprintln(m.out, "Input must not be empty.")
	}
}

// readInt prompts until a valid integer is entered, re-prompting on
// malformed input without any state change.
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input.")
			continue
		}
		return value, true
	}
}

// readFloat prompts until a valid number is entered.
func (m *Menu) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid input.")
			continue
		}
		return value, true
	}
}
