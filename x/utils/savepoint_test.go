package utils

import (
	"context"
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/store"
	"github.com/unichan/unichan/unichantest/assert"
)

func TestSavepoint(t *testing.T) {
	key := []byte("k")
	val := []byte("v")

	cases := map[string]struct {
		save      Savepoint
		handler   *writingHandler
		check     bool
		wantErr   *errors.Error
		wantState []byte
	}{
		"check with a savepoint rolls back on error": {
			save:      NewSavepoint().OnCheck(),
			handler:   &writingHandler{key: key, value: val, err: errors.ErrState},
			check:     true,
			wantErr:   errors.ErrState,
			wantState: nil,
		},
		"check with a savepoint commits on success": {
			save:      NewSavepoint().OnCheck(),
			handler:   &writingHandler{key: key, value: val},
			check:     true,
			wantState: val,
		},
		"deliver with a savepoint rolls back on error": {
			save:      NewSavepoint().OnDeliver(),
			handler:   &writingHandler{key: key, value: val, err: errors.ErrState},
			wantErr:   errors.ErrState,
			wantState: nil,
		},
		"deliver with a savepoint commits on success": {
			save:      NewSavepoint().OnDeliver(),
			handler:   &writingHandler{key: key, value: val},
			wantState: val,
		},
		"inactive savepoint does not isolate": {
			save:      NewSavepoint(),
			handler:   &writingHandler{key: key, value: val, err: errors.ErrState},
			wantErr:   errors.ErrState,
			wantState: val,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctx := context.Background()

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, db, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, db, nil, tc.handler)
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}

			got, gerr := db.Get(key)
			assert.Nil(t, gerr)
			assert.Equal(t, tc.wantState, got)
		})
	}
}

// writingHandler writes a single pair into the store and returns the
// configured error.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ unichan.Handler = (*writingHandler)(nil)

func (h *writingHandler) Check(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &unichan.CheckResult{}, h.err
}

func (h *writingHandler) Deliver(ctx unichan.Context, db unichan.KVStore, tx unichan.Tx) (*unichan.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &unichan.DeliverResult{}, h.err
}
