package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/unichantest"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	h := &unichantest.Handler{}
	msg := &unichantest.Msg{RoutePath: "test/good"}
	r.Handle(msg, h)

	tx := &unichantest.Tx{Msg: msg}
	ctx := context.Background()

	_, err := r.Check(ctx, nil, tx)
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, tx)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	tx := &unichantest.Tx{Msg: &unichantest.Msg{RoutePath: "test/missing"}}
	ctx := context.Background()

	if _, err := r.Check(ctx, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := r.Deliver(ctx, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &unichantest.Handler{}
	msg := &unichantest.Msg{RoutePath: "test/good"}
	r.Handle(msg, h)

	// re-registration must panic
	assert.Panics(t, func() { r.Handle(msg, h) })
	// so does an invalid path
	assert.Panics(t, func() {
		r.Handle(&unichantest.Msg{RoutePath: "l:7"}, h)
	})
}
