package paychan

import (
	"github.com/unichan/unichan/errors"
)

var (
	// ErrOpenChannel is returned when funding an address that still
	// holds an escrowed balance.
	ErrOpenChannel = errors.Register(1100, "channel already open")

	// ErrNoFunds is returned when a voucher authorizes a balance that
	// is not strictly below the recorded one. A voucher with a broken
	// signature recovers to an address without funds and surfaces here
	// as well.
	ErrNoFunds = errors.Register(1101, "insufficient balance")

	// ErrNoChannel is returned when challenging an address without an
	// open channel.
	ErrNoChannel = errors.Register(1102, "no open channel")

	// ErrNotDisputing is returned by the time left query when no
	// dispute deadline is set.
	ErrNotDisputing = errors.Register(1103, "not disputing")

	// ErrNoDispute is returned when defunding a channel that was never
	// challenged.
	ErrNoDispute = errors.Register(1104, "no open dispute")

	// ErrWindowNotElapsed is returned when defunding before the dispute
	// deadline has passed.
	ErrWindowNotElapsed = errors.Register(1105, "dispute window not elapsed")

	// ErrPaymentTransfer is returned when the payout to the payee is
	// rejected. The whole redemption is rolled back.
	ErrPaymentTransfer = errors.Register(1106, "payment transfer failed")

	// ErrRefundTransfer is returned when returning the remainder to the
	// client is rejected. The whole defunding is rolled back.
	ErrRefundTransfer = errors.Register(1107, "refund transfer failed")
)
