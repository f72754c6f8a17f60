package cash

import (
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from the genesis file.
// Addresses are hex encoded, not base64.
type GenesisAccount struct {
	Address unichan.Address `json:"address"`
	Balance uint64          `json:"balance"`
}

// Initializer fulfils the Initializer interface to load wallet
// balances from the genesis file.
type Initializer struct{}

var _ unichan.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and save
// it to the database.
func (Initializer) FromGenesis(opts unichan.Options, kv unichan.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %q", acct.Address)
		}
		if err := bucket.Put(kv, acct.Address, &Wallet{Balance: acct.Balance}); err != nil {
			return errors.Wrapf(err, "save account %q", acct.Address)
		}
	}
	return nil
}
