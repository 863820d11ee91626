package cash

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/orm"
)

// CoinMover is the capability to move coins between two wallets.
// It is the minimal interface that spending extensions should require.
type CoinMover interface {
	// MoveCoins removes funds from the source wallet and adds them to
	// the destination wallet. The destination wallet is created when it
	// does not exist yet. It fails if the source does not exist or does
	// not hold sufficient funds.
	MoveCoins(db barter.KVStore, src barter.Address, dest barter.Address, amount coin.Coin) error
}

// Balancer is the capability to inspect wallet funds.
type Balancer interface {
	// Balance returns the funds of the wallet with given address.
	// It returns ErrNotFound if the wallet does not exist.
	Balance(db barter.ReadOnlyKVStore, addr barter.Address) (coin.Coins, error)
}

// Controller is the full access to the wallet states. It is given to
// trusted extension code only, external callers go through SendMsg.
type Controller interface {
	CoinMover
	Balancer

	// IssueCoins attempts to add the given amount of coins to the
	// destination wallet, creating it when missing.
	IssueCoins(db barter.KVStore, dest barter.Address, amount coin.Coin) error

	// CloseAccount removes an existing, empty wallet from the store.
	// Closing a wallet that still holds funds is an error.
	CloseAccount(db barter.KVStore, addr barter.Address) error
}

// BucketController is a Controller backed by the wallet bucket.
type BucketController struct {
	bucket orm.ModelBucket
}

var _ Controller = BucketController{}

// NewController returns a controller using the default wallet bucket.
func NewController() BucketController {
	return BucketController{bucket: NewBucket()}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BucketController) MoveCoins(db barter.KVStore, src barter.Address, dest barter.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	var sender Set
	if err := c.bucket.One(db, src, &sender); err != nil {
		return errors.Wrapf(err, "source %s", src)
	}
	if !coin.Coins(sender.Coins).Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	var recipient Set
	switch err := c.bucket.One(db, dest, &recipient); {
	case err == nil:
		// Wallet exists, add to it.
	case errors.ErrNotFound.Is(err):
		// Wallet is created by the first deposit.
	default:
		return errors.Wrapf(err, "destination %s", dest)
	}

	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "cannot update source")
	}
	if err := c.bucket.Put(db, dest, &recipient); err != nil {
		return errors.Wrap(err, "cannot update destination")
	}
	return nil
}

// Balance returns the funds of the wallet with given address.
func (c BucketController) Balance(db barter.ReadOnlyKVStore, addr barter.Address) (coin.Coins, error) {
	var wallet Set
	if err := c.bucket.One(db, addr, &wallet); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return coin.Coins(wallet.Coins), nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BucketController) IssueCoins(db barter.KVStore, dest barter.Address, amount coin.Coin) error {
	var recipient Set
	if err := c.bucket.One(db, dest, &recipient); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, &recipient)
}

// CloseAccount removes an empty wallet from the store. The residual
// value of a wallet must be moved out before it can be closed.
func (c BucketController) CloseAccount(db barter.KVStore, addr barter.Address) error {
	var wallet Set
	if err := c.bucket.One(db, addr, &wallet); err != nil {
		return errors.Wrapf(err, "wallet %s", addr)
	}
	if !coin.Coins(wallet.Coins).IsEmpty() {
		return errors.Wrapf(errors.ErrState, "wallet %s still holds funds", addr)
	}
	return c.bucket.Delete(db, addr)
}

// MoveCoins is a shortcut for using a CoinMover without creating a
// controller instance first.
func MoveCoins(db barter.KVStore, mover CoinMover, src barter.Address, dest barter.Address, amount coin.Coin) error {
	return mover.MoveCoins(db, src, dest, amount)
}
