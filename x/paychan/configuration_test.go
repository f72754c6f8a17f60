package paychan

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/store"
	"github.com/unichan/unichan/unichantest"
	"github.com/unichan/unichan/unichantest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf     Configuration
		wantErrs map[string]*errors.Error
	}{
		"valid configuration": {
			conf: Configuration{
				Payee:         unichantest.NewAddress(),
				DisputeWindow: unichan.AsUnixDuration(time.Hour),
			},
			wantErrs: map[string]*errors.Error{
				"Payee":         nil,
				"DisputeWindow": nil,
			},
		},
		"payee is required": {
			conf: Configuration{
				DisputeWindow: unichan.AsUnixDuration(time.Hour),
			},
			wantErrs: map[string]*errors.Error{
				"Payee":         errors.ErrEmpty,
				"DisputeWindow": nil,
			},
		},
		"dispute window must not be zero": {
			conf: Configuration{
				Payee: unichantest.NewAddress(),
			},
			wantErrs: map[string]*errors.Error{
				"Payee":         nil,
				"DisputeWindow": errors.ErrAmount,
			},
		},
		"dispute window must not be negative": {
			conf: Configuration{
				Payee:         unichantest.NewAddress(),
				DisputeWindow: unichan.AsUnixDuration(-time.Hour),
			},
			wantErrs: map[string]*errors.Error{
				"Payee":         nil,
				"DisputeWindow": errors.ErrAmount,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestGenesisInitializer(t *testing.T) {
	payee := unichantest.NewAddress()
	genesis := fmt.Sprintf(`{
		"conf": {
			"paychan": {
				"payee": %q,
				"dispute_window": "3h"
			}
		}
	}`, hex.EncodeToString(payee))

	var opts unichan.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, payee, conf.Payee)
	assert.Equal(t, unichan.AsUnixDuration(3*time.Hour), conf.DisputeWindow)
}

func TestGenesisInitializerRejectsBrokenConfig(t *testing.T) {
	genesis := `{
		"conf": {
			"paychan": {
				"dispute_window": "3h"
			}
		}
	}`

	var opts unichan.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want an empty payee error, got %+v", err)
	}
}
