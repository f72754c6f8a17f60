package cash

import (
	"math"

	"github.com/unichan/unichan/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet can be written to the database.
// Any uint64 balance is acceptable.
func (w *Wallet) Validate() error {
	return nil
}

// Copy makes a new wallet with the same balance
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		Balance: w.Balance,
	}
}

// Add increases the balance, guarding against overflow.
// Returns false if the amount does not fit.
func (w *Wallet) Add(amount uint64) bool {
	if w.Balance > math.MaxUint64-amount {
		return false
	}
	w.Balance += amount
	return true
}

// Subtract decreases the balance.
// Returns false if the wallet does not hold enough.
func (w *Wallet) Subtract(amount uint64) bool {
	if w.Balance < amount {
		return false
	}
	w.Balance -= amount
	return true
}

// NewWalletBucket returns a bucket for keeping track of balances,
// keyed by the account address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
