package crypto

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec"
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
)

// SignatureLength is the size of a compact recoverable signature:
// one header byte carrying the recovery id, followed by the 32 byte
// R and 32 byte S values.
const SignatureLength = 65

// signedMessagePrefix is prepended to the balance digest before the
// final hash, so that a voucher signature can never be confused with
// a signature over arbitrary data.
var signedMessagePrefix = []byte("\x19Ethereum Signed Message:\n32")

// VoucherDigest computes the digest a client signs to authorize
// a cumulative balance. The balance is encoded as a 32 byte
// big-endian word, hashed, wrapped in the signed message prefix
// and hashed again.
func VoucherDigest(updatedBalance uint64) []byte {
	var word [32]byte
	binary.BigEndian.PutUint64(word[24:], updatedBalance)
	inner := Keccak256(word[:])
	return Keccak256(signedMessagePrefix, inner)
}

// RecoverSigner extracts the address that signed the given
// cumulative balance. The signature must be in 65 byte compact
// form. Any malformed or unrecoverable signature is an error,
// the caller decides how strict to be about it.
func RecoverSigner(updatedBalance uint64, sig []byte) (unichan.Address, error) {
	if len(sig) != SignatureLength {
		return nil, errors.Wrapf(errors.ErrInput, "signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	digest := VoucherDigest(updatedBalance)
	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig, digest)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot recover public key: %v", err)
	}
	return PubkeyAddress(pub), nil
}

// PubkeyAddress derives the address for a secp256k1 public key.
// It is the last 20 bytes of the keccak hash of the uncompressed
// key without the format prefix.
func PubkeyAddress(pub *btcec.PublicKey) unichan.Address {
	raw := pub.SerializeUncompressed()
	h := Keccak256(raw[1:])
	return unichan.Address(h[len(h)-unichan.AddressLength:])
}
