package crypto

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy Keccak-256 digest of the
// concatenation of all input slices. This is the hash used by
// voucher signatures, which predates the standardized SHA-3
// padding.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
