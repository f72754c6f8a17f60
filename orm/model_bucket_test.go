package orm_test

import (
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/orm"
	"github.com/unichan/unichan/store"
	"github.com/unichan/unichan/unichantest/assert"
	"github.com/unichan/unichan/x/cash"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := orm.NewModelBucket("cash", &cash.Wallet{})

	key := []byte("a-wallet-key")

	if err := b.Has(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	var missing cash.Wallet
	if err := b.One(db, key, &missing); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	assert.Nil(t, b.Put(db, key, &cash.Wallet{Balance: 5}))
	assert.Nil(t, b.Has(db, key))

	var w cash.Wallet
	assert.Nil(t, b.One(db, key, &w))
	assert.Equal(t, uint64(5), w.Balance)

	// a second put overwrites
	assert.Nil(t, b.Put(db, key, &cash.Wallet{Balance: 11}))
	assert.Nil(t, b.One(db, key, &w))
	assert.Equal(t, uint64(11), w.Balance)

	assert.Nil(t, b.Delete(db, key))
	if err := b.Delete(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found on double delete, got %+v", err)
	}
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := orm.NewModelBucket("cash", &cash.Wallet{})

	qr := unichan.NewQueryRouter()
	b.Register("testwallets", qr)

	key := []byte("wallet-key-1")
	assert.Nil(t, b.Put(db, key, &cash.Wallet{Balance: 5}))

	h := qr.Handler("/testwallets")
	if h == nil {
		t.Fatal("bucket not registered")
	}
	models, err := h.Query(db, "", key)
	assert.Nil(t, err)
	if len(models) != 1 {
		t.Fatalf("want one result, got %d", len(models))
	}
	var w cash.Wallet
	assert.Nil(t, w.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(5), w.Balance)

	// prefix queries return all entities of the bucket
	assert.Nil(t, b.Put(db, []byte("wallet-key-2"), &cash.Wallet{Balance: 7}))
	models, err = h.Query(db, "prefix", nil)
	assert.Nil(t, err)
	if len(models) != 2 {
		t.Fatalf("want two results, got %d", len(models))
	}
}

func TestNewModelBucketRequiresValidName(t *testing.T) {
	assert.Panics(t, func() {
		orm.NewModelBucket("Not A Valid Name", &cash.Wallet{})
	})
}
