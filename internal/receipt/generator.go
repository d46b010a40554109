// Package receipt renders plain-text purchase receipts into a single-slot
// file: each new receipt overwrites the previous one. The slot is an
// explicit "last receipt" artifact, not an archive.
package receipt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VATRate is the value-added tax rate broken out on receipts. Totals are
// VAT-inclusive; the subtotal is derived by dividing the rate back out.
const VATRate = 0.16

// Data carries everything the generator needs to render one receipt.
type Data struct {
	ProductName  string
	Quantity     int
	UnitPrice    float64
	Total        float64
	PaymentLabel string
}

// Receipt describes an emitted receipt artifact.
type Receipt struct {
	Path          string
	Sequence      int
	TransactionID string
}

// Generator writes receipts to a fixed path. Sequence numbers are
// monotonic within a process run.
type Generator struct {
	path  string
	seq   int
	now   func() time.Time
	newID func() string
}

func NewGenerator(path string) *Generator {
	return &Generator{
		path:  path,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Generate renders the receipt and overwrites the slot file.
func (g *Generator) Generate(d Data) (*Receipt, error) {
	g.seq++
	r := &Receipt{
		Path:          g.path,
		Sequence:      g.seq,
		TransactionID: g.newID(),
	}

	if err := os.WriteFile(g.path, []byte(g.render(d, r)), 0o644); err != nil {
		g.seq--
		return nil, fmt.Errorf("write receipt %s: %w", g.path, err)
	}
	return r, nil
}

func (g *Generator) render(d Data, r *Receipt) string {
	now := g.now()
	subtotal := d.Total / (1 + VATRate)
	vat := subtotal * VATRate

	var b strings.Builder
	b.WriteString("*************** CORNER STORE ****************\n")
	b.WriteString("              PURCHASE RECEIPT\n")
	b.WriteString("---------------------------------------------\n\n")
	fmt.Fprintf(&b, "Receipt No: %06d\n", r.Sequence)
	fmt.Fprintf(&b, "Transaction: %s\n", r.TransactionID)
	fmt.Fprintf(&b, "Date: %s   Time: %s\n\n", now.Format("02/01/2006"), now.Format("15:04:05"))
	b.WriteString("Description                          Price\n")
	b.WriteString("---------------------------------------------\n")
	fmt.Fprintf(&b, "%-30s $%9.2f\n", d.ProductName, d.UnitPrice)
	fmt.Fprintf(&b, "Quantity: %d\n", d.Quantity)
	b.WriteString("---------------------------------------------\n\n")
	fmt.Fprintf(&b, "Subtotal:                       $%9.2f\n", subtotal)
	fmt.Fprintf(&b, "VAT (%.0f%%):                      $%9.2f\n", VATRate*100, vat)
	fmt.Fprintf(&b, "TOTAL:                          $%9.2f\n\n", d.Total)
	fmt.Fprintf(&b, "Payment method: %s\n", d.PaymentLabel)
	b.WriteString("---------------------------------------------\n")
	b.WriteString("   Thank you for your purchase. Come again!\n")
	b.WriteString("*********************************************\n")
	return b.String()
}
