package cash

import (
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// SetCoins overwrites the coins of the wallet with given set.
func (s *Set) SetCoins(coins coin.Coins) {
	s.Coins = coins
}

// Add modifies the set to add given coin.
func (s *Set) Add(c coin.Coin) error {
	coins, err := coin.Coins(s.Coins).Add(c)
	if err != nil {
		return errors.Wrap(err, "cannot add to wallet")
	}
	s.Coins = coins
	return nil
}

// Subtract modifies the set to remove given coin.
func (s *Set) Subtract(c coin.Coin) error {
	return s.Add(c.Negative())
}

// NewBucket initializes the wallet bucket with the default name.
// Wallets are keyed by the owning address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
