package cash

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/store"
	"github.com/unichan/unichan/unichantest"
	"github.com/unichan/unichan/unichantest/assert"
)

func TestGenesisAccounts(t *testing.T) {
	addr := unichantest.NewAddress()
	genesis := fmt.Sprintf(`{
		"cash": [
			{"address": %q, "balance": 1234}
		]
	}`, hex.EncodeToString(addr))

	var opts unichan.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	ctrl := NewController()
	balance, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1234), balance)
}

func TestGenesisAccountsRejectBadAddress(t *testing.T) {
	genesis := `{
		"cash": [
			{"address": "6865782d61646472", "balance": 1}
		]
	}`

	var opts unichan.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err == nil {
		t.Fatal("a malformed address must be rejected")
	}
}

func TestGenesisWithoutAccounts(t *testing.T) {
	var opts unichan.Options
	assert.Nil(t, json.Unmarshal([]byte(`{}`), &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))
}
