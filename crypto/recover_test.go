package crypto

import (
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/unichantest/assert"
)

func TestRecoverRoundtrip(t *testing.T) {
	signer, err := GenSigner()
	assert.Nil(t, err)

	cases := map[string]uint64{
		"zero balance":  0,
		"small balance": 77,
		"max balance":   1<<64 - 1,
	}
	for testName, balance := range cases {
		t.Run(testName, func(t *testing.T) {
			sig, err := signer.SignVoucher(balance)
			assert.Nil(t, err)
			assert.Equal(t, SignatureLength, len(sig))

			got, err := RecoverSigner(balance, sig)
			assert.Nil(t, err)
			if !got.Equals(signer.Address()) {
				t.Fatalf("recovered %s, want %s", got, signer.Address())
			}
		})
	}
}

func TestRecoverWrongBalance(t *testing.T) {
	signer, err := GenSigner()
	assert.Nil(t, err)

	sig, err := signer.SignVoucher(100)
	assert.Nil(t, err)

	// recovery over a different balance must not produce the
	// signer address
	got, err := RecoverSigner(101, sig)
	if err == nil && got.Equals(signer.Address()) {
		t.Fatal("tampered balance recovered to the signer")
	}
}

func TestRecoverMalformedSignature(t *testing.T) {
	cases := map[string][]byte{
		"nil":       nil,
		"empty":     {},
		"too short": make([]byte, SignatureLength-1),
		"too long":  make([]byte, SignatureLength+1),
	}
	for testName, sig := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := RecoverSigner(1, sig)
			if !errors.ErrInput.Is(err) {
				t.Fatalf("want input error, got %+v", err)
			}
		})
	}
}

func TestRecoverGarbageSignature(t *testing.T) {
	sig := make([]byte, SignatureLength)
	// header byte outside of the compact range
	sig[0] = 99
	_, err := RecoverSigner(1, sig)
	if err == nil {
		t.Fatal("garbage signature recovered")
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	a := VoucherDigest(12345)
	b := VoucherDigest(12345)
	assert.Equal(t, a, b)
	if len(a) != 32 {
		t.Fatalf("digest must be 32 bytes, got %d", len(a))
	}
}

func TestAddressLength(t *testing.T) {
	signer, err := GenSigner()
	assert.Nil(t, err)
	assert.Nil(t, signer.Address().Validate())
	assert.Equal(t, unichan.AddressLength, len(signer.Address()))
}
