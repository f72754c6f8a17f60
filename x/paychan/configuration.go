package paychan

import (
	unichan "github.com/unichan/unichan"
	"github.com/unichan/unichan/errors"
	"github.com/unichan/unichan/gconf"
)

// Validate ensures the configuration is complete. The dispute window
// must be a positive duration so that a challenge always sets a
// deadline strictly in the future.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Payee", c.Payee.Validate())
	if c.DisputeWindow <= 0 {
		errs = errors.AppendField(errs, "DisputeWindow", errors.ErrAmount)
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "paychan", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ unichan.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save
// it to the database
func (*Initializer) FromGenesis(opts unichan.Options, db unichan.KVStore) error {
	return gconf.InitConfig(db, opts, "paychan", &Configuration{})
}
