package x_test

import (
	"context"
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/unichantest"
	"github.com/unichan/unichan/unichantest/assert"
	"github.com/unichan/unichan/x"
)

func TestChainAuth(t *testing.T) {
	a := unichantest.NewCondition()
	b := unichantest.NewCondition()
	c := unichantest.NewCondition()

	first := &unichantest.Auth{Signer: a}
	ctxAuth := &unichantest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(first, ctxAuth)

	ctx := ctxAuth.SetConditions(context.Background(), b, c)

	conds := auth.GetConditions(ctx)
	if len(conds) != 3 {
		t.Fatalf("want 3 conditions, got %d", len(conds))
	}

	for _, cond := range []unichan.Condition{a, b, c} {
		if !auth.HasAddress(ctx, cond.Address()) {
			t.Fatalf("missing address of %s", cond)
		}
	}
	if auth.HasAddress(ctx, unichantest.NewAddress()) {
		t.Fatal("an unknown address must not authenticate")
	}
}

func TestMainSigner(t *testing.T) {
	a := unichantest.NewCondition()
	b := unichantest.NewCondition()

	auth := &unichantest.Auth{Signers: []unichan.Condition{a, b}}
	if got := x.MainSigner(context.Background(), auth); !got.Equals(a) {
		t.Fatalf("want the first signer, got %s", got)
	}

	empty := &unichantest.Auth{}
	if got := x.MainSigner(context.Background(), empty); got != nil {
		t.Fatalf("want no signer, got %s", got)
	}
}

func TestHasAllAddresses(t *testing.T) {
	a := unichantest.NewCondition()
	b := unichantest.NewCondition()

	auth := &unichantest.Auth{Signers: []unichan.Condition{a, b}}
	ctx := context.Background()

	required := []unichan.Address{a.Address(), b.Address()}
	if !x.HasAllAddresses(ctx, auth, required) {
		t.Fatal("all signed addresses must authenticate")
	}

	required = append(required, unichantest.NewAddress())
	if x.HasAllAddresses(ctx, auth, required) {
		t.Fatal("an unknown address must fail the check")
	}
}

func TestHasAllConditions(t *testing.T) {
	a := unichantest.NewCondition()
	b := unichantest.NewCondition()

	auth := &unichantest.Auth{Signers: []unichan.Condition{a, b}}
	ctx := context.Background()

	if !x.HasAllConditions(ctx, auth, []unichan.Condition{a, b}) {
		t.Fatal("all signed conditions must authenticate")
	}
	if x.HasAllConditions(ctx, auth, []unichan.Condition{a, unichantest.NewCondition()}) {
		t.Fatal("an unknown condition must fail the check")
	}
}

func TestGetAddresses(t *testing.T) {
	a := unichantest.NewCondition()
	auth := &unichantest.Auth{Signer: a}

	addrs := x.GetAddresses(context.Background(), auth)
	assert.Equal(t, 1, len(addrs))
	assert.Equal(t, a.Address(), addrs[0])
}
