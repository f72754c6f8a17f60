package unichan

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from a Check call.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform.
	GasAllocated int64
	// GasPayment is the fees for this tx already paid.
	GasPayment int64
}

// DeliverResult captures any non-error response from a Deliver call.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// Tags are fire-and-forget event notifications emitted by the
	// operation. They have no effect on control flow and carry no
	// acknowledgment; a host may index them.
	Tags []common.KVPair
	// GasUsed is the units of work performed.
	GasUsed int64
}
