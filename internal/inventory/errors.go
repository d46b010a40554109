package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
)

// NotifyError reports a listener that failed during low-stock fan-out.
// The sale that triggered the notification has already been applied;
// callers must not treat this as a failed sell.
type NotifyError struct {
	Listener string
	Err      error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("low-stock listener %q failed: %v", e.Listener, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
