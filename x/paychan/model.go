package paychan

import (
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/orm"
)

// BucketName is where channel state is stored, keyed by the client
// address.
const BucketName = "paychan"

var _ orm.Model = (*PaymentChannel)(nil)

// Validate ensures the channel state can be written to the database.
func (pc *PaymentChannel) Validate() error {
	var errs error
	if pc.DisputeDeadline < 0 {
		errs = errors.AppendField(errs, "DisputeDeadline", errors.ErrState)
	}
	return errs
}

// Copy makes a new channel with the same state
func (pc *PaymentChannel) Copy() orm.CloneableData {
	return &PaymentChannel{
		Balance:         pc.Balance,
		DisputeDeadline: pc.DisputeDeadline,
	}
}

// Disputing returns true if a dispute deadline is set.
func (pc *PaymentChannel) Disputing() bool {
	return pc.DisputeDeadline != 0
}

// NewChannelBucket returns a bucket for keeping track of channel
// state, one entry per client address.
func NewChannelBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &PaymentChannel{})
}
