package inventory

import (
	"fmt"
	"log/slog"
)

// DefaultLowStockThreshold is the stock level below which the ledger
// notifies its listeners after a sale.
const DefaultLowStockThreshold = 5

// UnknownProductName is the sentinel returned by NameOf for absent codes.
const UnknownProductName = "Unknown"

type subscription struct {
	name     string
	listener Listener
}

// Ledger is the authoritative in-memory product collection. Products keep
// insertion order and are unique by code. A Ledger is not safe for
// concurrent use; the application is single-threaded by design.
type Ledger struct {
	products      []*Product
	subscriptions []subscription
	threshold     int
	logger        *slog.Logger
}

// NewLedger creates an empty ledger. A threshold of zero or less selects
// DefaultLowStockThreshold.
func NewLedger(logger *slog.Logger, threshold int) *Ledger {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &Ledger{
		threshold: threshold,
		logger:    logger,
	}
}

// Load replaces the entire product collection with the given snapshot
// records. When two records share a code the first occurrence wins and
// later ones are skipped with a warning.
func (l *Ledger) Load(records []Record) {
	products := make([]*Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.Code]; dup {
			l.logger.Warn("duplicate product code in snapshot, keeping first occurrence",
				slog.String("code", r.Code), slog.String("name", r.Name))
			continue
		}
		seen[r.Code] = struct{}{}
		products = append(products, &Product{
			Code:      r.Code,
			Name:      r.Name,
			UnitPrice: r.UnitPrice,
			Quantity:  r.Quantity,
		})
	}
	l.products = products
}

// List returns a read-only view of the products in insertion order.
func (l *Ledger) List() []Product {
	view := make([]Product, len(l.products))
	for i, p := range l.products {
		view[i] = *p
	}
	return view
}

// Sell decrements the stock of the product with the given code and
// returns the resulting sale. It fails with ErrInvalidQuantity,
// ErrProductNotFound or ErrInsufficientStock without mutating state.
//
// When the resulting quantity drops below the threshold the listeners are
// notified exactly once with a message naming the product. The
// notification re-fires on every qualifying sell while the stock stays
// below the threshold, not only on the crossing. A listener failure is
// returned as *NotifyError together with the sale: the stock decrement
// stands.
func (l *Ledger) Sell(code string, quantity int) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	p := l.find(code)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if quantity > p.Quantity {
		return nil, ErrInsufficientStock
	}

	p.Quantity -= quantity
	sale := &Sale{
		Code:      p.Code,
		Quantity:  quantity,
		UnitPrice: p.UnitPrice,
		Amount:    p.UnitPrice * float64(quantity),
	}

	if p.Quantity < l.threshold {
		msg := fmt.Sprintf("low stock of %s (%d left)", p.Name, p.Quantity)
		if err := l.notify(msg); err != nil {
			return sale, err
		}
	}
	return sale, nil
}

// Restock increments the stock of the product with the given code.
// Restocking never triggers notifications.
func (l *Ledger) Restock(code string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p := l.find(code)
	if p == nil {
		return ErrProductNotFound
	}
	p.Quantity += quantity
	return nil
}

// Snapshot returns the full product collection as ordered records,
// suitable for serialization. It does not mutate the ledger.
func (l *Ledger) Snapshot() []Record {
	records := make([]Record, len(l.products))
	for i, p := range l.products {
		records[i] = Record{
			Code:      p.Code,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
		}
	}
	return records
}

// NameOf returns the product name for a code, or UnknownProductName when
// absent. Used to assemble receipt data after a successful sale.
func (l *Ledger) NameOf(code string) string {
	if p := l.find(code); p != nil {
		return p.Name
	}
	return UnknownProductName
}

// PriceOf returns the unit price for a code, or 0 when absent.
func (l *Ledger) PriceOf(code string) float64 {
	if p := l.find(code); p != nil {
		return p.UnitPrice
	}
	return 0.0
}

// Subscribe registers a listener under a caller-chosen name. Subscribing
// an existing name replaces the listener in place, keeping its position
// in the notification order.
func (l *Ledger) Subscribe(name string, listener Listener) {
	for i, s := range l.subscriptions {
		if s.name == name {
			l.subscriptions[i].listener = listener
			return
		}
	}
	l.subscriptions = append(l.subscriptions, subscription{name: name, listener: listener})
}

// Unsubscribe removes the listener registered under name. Removing an
// unknown name is a no-op.
func (l *Ledger) Unsubscribe(name string) {
	kept := l.subscriptions[:0]
	for _, s := range l.subscriptions {
		if s.name != name {
			kept = append(kept, s)
		}
	}
	l.subscriptions = kept
}

// notify fans the message out to all listeners in registration order.
// The first listener failure aborts the remaining fan-out.
func (l *Ledger) notify(message string) error {
	for _, s := range l.subscriptions {
		if err := s.listener.Update(message); err != nil {
			return &NotifyError{Listener: s.name, Err: err}
		}
	}
	return nil
}

func (l *Ledger) find(code string) *Product {
	for _, p := range l.products {
		if p.Code == code {
			return p
		}
	}
	return nil
}
