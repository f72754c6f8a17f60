package gconf

import (
	"encoding/json"
	"testing"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/store"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	db := store.MemStore()

	src := testConf{Raw: "a configuration payload"}
	if err := Save(db, "mypkg", &src); err != nil {
		t.Fatalf("save: %+v", err)
	}

	var dst testConf
	if err := Load(db, "mypkg", &dst); err != nil {
		t.Fatalf("load: %+v", err)
	}
	if dst.Raw != src.Raw {
		t.Fatalf("want %q, got %q", src.Raw, dst.Raw)
	}
}

func TestSaveRejectsInvalidConfiguration(t *testing.T) {
	db := store.MemStore()

	src := testConf{Raw: "broken", Err: errors.ErrState}
	if err := Save(db, "mypkg", &src); !errors.ErrState.Is(err) {
		t.Fatalf("want a validation error, got %+v", err)
	}
}

func TestLoadMissingConfiguration(t *testing.T) {
	db := store.MemStore()

	var dst testConf
	if err := Load(db, "missing", &dst); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()

	opts := unichan.Options{
		"conf": json.RawMessage(`{"mypkg": {"Raw": "from genesis"}}`),
	}
	var conf testConf
	if err := InitConfig(db, opts, "mypkg", &conf); err != nil {
		t.Fatalf("init: %+v", err)
	}

	var loaded testConf
	if err := Load(db, "mypkg", &loaded); err != nil {
		t.Fatalf("load: %+v", err)
	}
	if loaded.Raw != "from genesis" {
		t.Fatalf("unexpected configuration: %q", loaded.Raw)
	}
}

func TestInitConfigRequiresGenesisEntry(t *testing.T) {
	db := store.MemStore()

	opts := unichan.Options{
		"conf": json.RawMessage(`{"otherpkg": {}}`),
	}
	var conf testConf
	if err := InitConfig(db, opts, "mypkg", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

// testConf is a Configuration implementation for tests. It serializes
// to its raw payload instead of protobuf.
type testConf struct {
	Raw string
	Err error
}

var _ Configuration = (*testConf)(nil)

func (c *testConf) Marshal() ([]byte, error) {
	return []byte(c.Raw), nil
}

func (c *testConf) Unmarshal(raw []byte) error {
	c.Raw = string(raw)
	return nil
}

func (c *testConf) Validate() error {
	return c.Err
}
