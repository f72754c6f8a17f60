package cash

import (
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/orm"
)

// Controller is the functionality needed by other extensions to move
// funds between accounts. This is implemented by CashController and
// may be mocked in tests.
type Controller interface {
	CoinMover
	// Balance returns the amount held by this account. A missing
	// wallet is a zero balance, not an error.
	Balance(db unichan.KVStore, addr unichan.Address) (uint64, error)
}

// CoinMover is the minimal interface for moving and creating funds.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them
	// to the destination account.
	MoveCoins(db unichan.KVStore, src, dest unichan.Address, amount uint64) error
	// IssueCoins increases the balance of the destination account
	// out of thin air.
	IssueCoins(db unichan.KVStore, dest unichan.Address, amount uint64) error
}

// CashController implements Controller on top of a wallet bucket.
type CashController struct {
	bucket orm.ModelBucket
}

var _ Controller = CashController{}

// NewController returns a controller using the default wallet bucket.
func NewController() CashController {
	return CashController{bucket: NewWalletBucket()}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient funds, it fails.
func (c CashController) MoveCoins(db unichan.KVStore, src, dest unichan.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}

	var sender Wallet
	switch err := c.bucket.One(db, src, &sender); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrAmount, "empty account %s", src)
	case err != nil:
		return errors.Wrap(err, "cannot load source wallet")
	}
	if !sender.Subtract(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	recipient, err := c.getOrCreate(db, dest)
	if err != nil {
		return err
	}
	if !recipient.Add(amount) {
		return errors.Wrapf(errors.ErrOverflow, "wallet %s cannot hold %d more", dest, amount)
	}

	if err := c.bucket.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "cannot store source wallet")
	}
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot store destination wallet")
	}
	return nil
}

// IssueCoins attempts to add the given amount to the destination
// address. Fails if it overflows the wallet.
func (c CashController) IssueCoins(db unichan.KVStore, dest unichan.Address, amount uint64) error {
	recipient, err := c.getOrCreate(db, dest)
	if err != nil {
		return err
	}
	if !recipient.Add(amount) {
		return errors.Wrapf(errors.ErrOverflow, "wallet %s cannot hold %d more", dest, amount)
	}
	return c.bucket.Put(db, dest, recipient)
}

// Balance returns the amount held by this account.
func (c CashController) Balance(db unichan.KVStore, addr unichan.Address) (uint64, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

func (c CashController) getOrCreate(db unichan.KVStore, addr unichan.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil, errors.ErrNotFound.Is(err):
		return &w, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}

// RegisterQuery registers the wallet bucket under /wallets.
func RegisterQuery(qr unichan.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
}
