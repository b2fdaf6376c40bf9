package reconcile

import "errors"

// Reconciliation errors.
var (
	// ErrPreconditionFailed reports an attempt to apply an action that can
	// only be resolved manually.
	ErrPreconditionFailed = errors.New("action cannot be applied")
	// ErrPartialApply summarizes a batch where some actions failed while
	// others succeeded. Per-action detail accompanies it.
	ErrPartialApply = errors.New("some actions failed to apply")
)
