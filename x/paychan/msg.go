package paychan

import (
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/crypto"
	"github.com/unichan/unichan/errors"
)

var _ unichan.Msg = (*FundChannelMsg)(nil)
var _ unichan.Msg = (*RedeemVoucherMsg)(nil)
var _ unichan.Msg = (*ChallengeChannelMsg)(nil)
var _ unichan.Msg = (*DefundChannelMsg)(nil)

// Path implements unichan.Msg interface.
func (FundChannelMsg) Path() string {
	return "paychan/fund"
}

// Validate implements unichan.Msg interface.
func (msg *FundChannelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Client", msg.Client.Validate())
	if msg.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// Path implements unichan.Msg interface.
func (RedeemVoucherMsg) Path() string {
	return "paychan/redeem"
}

// Validate implements unichan.Msg interface.
//
// Only the shape of the signature is checked here. Whether it was
// produced by a channel holder is decided during delivery, by
// recovery and balance lookup.
func (msg *RedeemVoucherMsg) Validate() error {
	var errs error
	if len(msg.Signature) != crypto.SignatureLength {
		errs = errors.AppendField(errs, "Signature",
			errors.Wrapf(errors.ErrInput, "must be %d bytes", crypto.SignatureLength))
	}
	return errs
}

// Path implements unichan.Msg interface.
func (ChallengeChannelMsg) Path() string {
	return "paychan/challenge"
}

// Validate implements unichan.Msg interface.
func (msg *ChallengeChannelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Client", msg.Client.Validate())
	return errs
}

// Path implements unichan.Msg interface.
func (DefundChannelMsg) Path() string {
	return "paychan/defund"
}

// Validate implements unichan.Msg interface.
func (msg *DefundChannelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Client", msg.Client.Validate())
	return errs
}
