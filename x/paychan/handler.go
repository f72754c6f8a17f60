package paychan

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tendermint/tendermint/libs/common"
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/crypto"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/orm"
	"github.com/unichan/unichan/x"
	"github.com/unichan/unichan/x/cash"
)

const (
	fundChannelCost   int64 = 300
	redeemVoucherCost int64 = 5
	challengeCost     int64 = 5
	defundChannelCost int64 = 5
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r unichan.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewChannelBucket()
	r.Handle(&FundChannelMsg{}, &fundChannelHandler{auth: auth, bucket: bucket, cash: ctrl})
	r.Handle(&RedeemVoucherMsg{}, &redeemVoucherHandler{bucket: bucket, cash: ctrl})
	r.Handle(&ChallengeChannelMsg{}, &challengeChannelHandler{auth: auth, bucket: bucket})
	r.Handle(&DefundChannelMsg{}, &defundChannelHandler{auth: auth, bucket: bucket, cash: ctrl})
}

// RegisterQuery will register this bucket as "/paychans".
func RegisterQuery(qr unichan.QueryRouter) {
	NewChannelBucket().Register("paychans", qr)
}

// TimeLeft reports how long until the dispute window of this client's
// channel elapses. The result may be negative once the window is over.
// Returns ErrNotDisputing when no dispute deadline is set.
func TimeLeft(db unichan.ReadOnlyKVStore, now time.Time, client unichan.Address) (time.Duration, error) {
	var pc PaymentChannel
	switch err := NewChannelBucket().One(db, client, &pc); {
	case errors.ErrNotFound.Is(err):
		return 0, errors.Wrapf(ErrNotDisputing, "no channel for %s", client)
	case err != nil:
		return 0, errors.Wrap(err, "cannot load channel")
	}
	if !pc.Disputing() {
		return 0, errors.Wrapf(ErrNotDisputing, "channel %s", client)
	}
	return pc.DisputeDeadline.Time().Sub(now), nil
}

// channelAccount returns the escrow account address holding the funds
// of one client's channel. Funds on this account can be moved only by
// the handlers in this package.
func channelAccount(client unichan.Address) unichan.Address {
	return unichan.NewCondition("paychan", "escrow", client).Address()
}

type fundChannelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ unichan.Handler = (*fundChannelHandler)(nil)

func (h *fundChannelHandler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &unichan.CheckResult{GasAllocated: fundChannelCost}, nil
}

func (h *fundChannelHandler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Keep any dispute deadline a previous incarnation of this channel
	// left behind. Funding changes the balance only.
	var pc PaymentChannel
	if err := h.bucket.One(db, msg.Client, &pc); err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "cannot load channel")
	}
	pc.Balance = msg.Amount
	if err := h.bucket.Put(db, msg.Client, &pc); err != nil {
		return nil, errors.Wrap(err, "cannot store channel")
	}

	// Deposit the escrow on the channel account.
	if err := h.cash.MoveCoins(db, msg.Client, channelAccount(msg.Client), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot escrow funds")
	}

	res := &unichan.DeliverResult{
		Data: msg.Client,
		Log:  fmt.Sprintf("funded channel with %d", msg.Amount),
		Tags: []common.KVPair{
			{Key: []byte("paychan:opened"), Value: msg.Client},
			{Key: []byte("paychan:amount"), Value: []byte(strconv.FormatUint(msg.Amount, 10))},
		},
	}
	return res, nil
}

func (h *fundChannelHandler) validate(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*FundChannelMsg, error) {
	var msg FundChannelMsg
	if err := unichan.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	if !h.auth.HasAddress(ctx, msg.Client) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "client did not sign")
	}

	var pc PaymentChannel
	switch err := h.bucket.One(db, msg.Client, &pc); {
	case err == nil:
		if pc.Balance != 0 {
			return nil, errors.Wrapf(ErrOpenChannel, "channel %s holds %d", msg.Client, pc.Balance)
		}
	case errors.ErrNotFound.Is(err):
		// No channel yet, funding creates one.
	default:
		return nil, errors.Wrap(err, "cannot load channel")
	}

	return &msg, nil
}

type redeemVoucherHandler struct {
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ unichan.Handler = (*redeemVoucherHandler)(nil)

func (h *redeemVoucherHandler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &unichan.CheckResult{GasAllocated: redeemVoucherCost}, nil
}

func (h *redeemVoucherHandler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	msg, signer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	var pc PaymentChannel
	if err := h.bucket.One(db, signer, &pc); err != nil {
		return nil, errors.Wrap(err, "cannot load channel")
	}
	payment := pc.Balance - msg.UpdatedBalance

	// Write the reduced balance before moving any funds. The transfer
	// below must observe the channel already settled.
	pc.Balance = msg.UpdatedBalance
	if err := h.bucket.Put(db, signer, &pc); err != nil {
		return nil, errors.Wrap(err, "cannot store channel")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, channelAccount(signer), conf.Payee, payment); err != nil {
		return nil, errors.Wrapf(ErrPaymentTransfer, "%v", err)
	}

	res := &unichan.DeliverResult{
		Data: signer,
		Log:  fmt.Sprintf("paid %d to payee", payment),
		Tags: []common.KVPair{
			{Key: []byte("paychan:withdrawn"), Value: conf.Payee},
			{Key: []byte("paychan:amount"), Value: []byte(strconv.FormatUint(payment, 10))},
		},
	}
	return res, nil
}

// validate recovers the voucher signer and ensures the voucher
// authorizes a strictly lower balance than recorded. A voucher with a
// broken signature recovers to some address, its channel lookup fails
// and the voucher is rejected with ErrNoFunds. There is no separate
// bad signature error on purpose.
func (h *redeemVoucherHandler) validate(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*RedeemVoucherMsg, unichan.Address, error) {
	var msg RedeemVoucherMsg
	if err := unichan.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	signer, err := crypto.RecoverSigner(msg.UpdatedBalance, msg.Signature)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrNoFunds, "unrecoverable signature: %v", err)
	}

	var pc PaymentChannel
	switch err := h.bucket.One(db, signer, &pc); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(ErrNoFunds, "no channel for %s", signer)
	case err != nil:
		return nil, nil, errors.Wrap(err, "cannot load channel")
	}

	if pc.Balance <= msg.UpdatedBalance {
		return nil, nil, errors.Wrapf(ErrNoFunds, "channel holds %d, voucher wants %d", pc.Balance, msg.UpdatedBalance)
	}

	return &msg, signer, nil
}

type challengeChannelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ unichan.Handler = (*challengeChannelHandler)(nil)

func (h *challengeChannelHandler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &unichan.CheckResult{GasAllocated: challengeCost}, nil
}

func (h *challengeChannelHandler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	msg, pc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	now, err := unichan.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	deadline := unichan.AsUnixTime(now.Add(conf.DisputeWindow.Duration()))
	// A deadline never moves back, a repeated challenge can only
	// extend it.
	if deadline > pc.DisputeDeadline {
		pc.DisputeDeadline = deadline
	}
	if err := h.bucket.Put(db, msg.Client, pc); err != nil {
		return nil, errors.Wrap(err, "cannot store channel")
	}

	res := &unichan.DeliverResult{
		Data: msg.Client,
		Log:  fmt.Sprintf("disputing until %s", pc.DisputeDeadline),
		Tags: []common.KVPair{
			{Key: []byte("paychan:challenged"), Value: msg.Client},
		},
	}
	return res, nil
}

func (h *challengeChannelHandler) validate(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*ChallengeChannelMsg, *PaymentChannel, error) {
	var msg ChallengeChannelMsg
	if err := unichan.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, msg.Client) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "client did not sign")
	}

	var pc PaymentChannel
	switch err := h.bucket.One(db, msg.Client, &pc); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(ErrNoChannel, "no channel for %s", msg.Client)
	case err != nil:
		return nil, nil, errors.Wrap(err, "cannot load channel")
	}
	if pc.Balance == 0 {
		return nil, nil, errors.Wrapf(ErrNoChannel, "channel %s is empty", msg.Client)
	}

	return &msg, &pc, nil
}

type defundChannelHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ unichan.Handler = (*defundChannelHandler)(nil)

func (h *defundChannelHandler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &unichan.CheckResult{GasAllocated: defundChannelCost}, nil
}

func (h *defundChannelHandler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	msg, pc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	remaining := pc.Balance

	// Remove the channel before returning the escrow. The address can
	// fund a fresh channel afterwards.
	if err := h.bucket.Delete(db, msg.Client); err != nil {
		return nil, errors.Wrap(err, "cannot delete channel")
	}

	if remaining > 0 {
		if err := h.cash.MoveCoins(db, channelAccount(msg.Client), msg.Client, remaining); err != nil {
			return nil, errors.Wrapf(ErrRefundTransfer, "%v", err)
		}
	}

	res := &unichan.DeliverResult{
		Data: msg.Client,
		Log:  fmt.Sprintf("returned %d to client", remaining),
		Tags: []common.KVPair{
			{Key: []byte("paychan:closed"), Value: msg.Client},
		},
	}
	return res, nil
}

func (h *defundChannelHandler) validate(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*DefundChannelMsg, *PaymentChannel, error) {
	var msg DefundChannelMsg
	if err := unichan.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	if !h.auth.HasAddress(ctx, msg.Client) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "client did not sign")
	}

	var pc PaymentChannel
	switch err := h.bucket.One(db, msg.Client, &pc); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrapf(ErrNoDispute, "no channel for %s", msg.Client)
	case err != nil:
		return nil, nil, errors.Wrap(err, "cannot load channel")
	}
	if !pc.Disputing() {
		return nil, nil, errors.Wrapf(ErrNoDispute, "channel %s was not challenged", msg.Client)
	}

	// Defunding requires the window to be strictly over. At the exact
	// deadline instant the provider may still redeem.
	now, err := unichan.BlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !now.After(pc.DisputeDeadline.Time()) {
		return nil, nil, errors.Wrapf(ErrWindowNotElapsed, "deadline %s", pc.DisputeDeadline)
	}

	return &msg, &pc, nil
}
