package offer

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/x/cash"
)

// moveAsset is the single choke point for all transfers issued by this
// package. When witness is set, the transfer spends from a derived
// wallet: the witness condition must hash to the source address, which
// proves the caller reproduced the vault identity. When witness is
// nil, the caller is responsible for having authenticated the source.
func moveAsset(db barter.KVStore, mover cash.CoinMover, src barter.Address, dest barter.Address, amount coin.Coin, witness barter.Condition) error {
	if witness != nil && !witness.Address().Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "witness does not control %s", src)
	}
	return cash.MoveCoins(db, mover, src, dest, amount)
}
