package utils

import (
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ unichan.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx, next unichan.Checker) (_ *unichan.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx unichan.Context, store unichan.KVStore, tx unichan.Tx, next unichan.Deliverer) (_ *unichan.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
