package cash

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
)

// Initializer fulfils the Initializer interface to load initial wallet
// balances from genesis configuration.
type Initializer struct{}

var _ barter.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts barter.Options, db barter.KVStore) error {
	accounts := []struct {
		Address barter.Address `json:"address"`
		Coins   coin.Coins     `json:"coins"`
	}{}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return errors.Wrap(err, "cannot load genesis accounts")
	}

	bucket := NewBucket()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		wallet := Set{Coins: acc.Coins}
		if err := bucket.Put(db, acc.Address, &wallet); err != nil {
			return errors.Wrapf(err, "account #%d wallet", i)
		}
	}
	return nil
}
