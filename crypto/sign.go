package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
)

// Signer holds a secp256k1 private key and can issue vouchers.
// It is the client side counterpart of RecoverSigner, used by
// tests and by any tool that wants to produce valid vouchers.
type Signer struct {
	priv *btcec.PrivateKey
}

// GenSigner creates a Signer with a fresh random key.
func GenSigner() (*Signer, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "cannot generate key: %v", err)
	}
	return &Signer{priv: priv}, nil
}

// NewSigner wraps an existing private key.
func NewSigner(priv *btcec.PrivateKey) *Signer {
	return &Signer{priv: priv}
}

// Address returns the address vouchers signed by this key
// recover to.
func (s *Signer) Address() unichan.Address {
	return PubkeyAddress(s.priv.PubKey())
}

// SignVoucher produces a compact recoverable signature over the
// given cumulative balance.
func (s *Signer) SignVoucher(updatedBalance uint64) ([]byte, error) {
	digest := VoucherDigest(updatedBalance)
	sig, err := btcec.SignCompact(btcec.S256(), s.priv, digest, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "cannot sign voucher: %v", err)
	}
	return sig, nil
}
