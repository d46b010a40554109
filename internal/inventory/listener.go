package inventory

import "log/slog"

// Listener receives low-stock messages from the ledger. Listener lifetime
// is owned by the caller: unsubscribe before discarding a listener, the
// ledger never checks validity on its own.
type Listener interface {
	Update(message string) error
}

// LowStockAlert is the default listener. It reports low-stock messages
// through the structured logger.
type LowStockAlert struct {
	logger *slog.Logger
}

func NewLowStockAlert(logger *slog.Logger) *LowStockAlert {
	return &LowStockAlert{logger: logger}
}

func (a *LowStockAlert) Update(message string) error {
	a.logger.Warn("low stock alert", slog.String("message", message))
	return nil
}
