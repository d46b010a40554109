// Package inventory implements the in-memory product ledger: the
// authoritative ordered collection of products, the sell and restock
// operations that enforce its stock invariants, and the low-stock
// listener registry.
package inventory

// Product is a stocked item. Code is the unique key and is never changed
// after creation; Quantity is mutated in place by sell and restock.
type Product struct {
	Code      string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Record is one product row of a ledger snapshot, the unit of exchange
// with the persistence layer.
type Record struct {
	Code      string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Sale is the outcome of a successful sell operation.
type Sale struct {
	Code      string
	Quantity  int
	UnitPrice float64
	Amount    float64
}
