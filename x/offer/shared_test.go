package offer

import (
	"testing"

	"github.com/barter-network/barter/bartertest"
	"github.com/barter-network/barter/bartertest/assert"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/store"
	"github.com/barter-network/barter/x/cash"
)

func TestMoveAssetRejectsForgedWitness(t *testing.T) {
	db := store.MemStore()
	ctrl := cash.NewController()

	maker := bartertest.NewKey()
	vault, _, err := DeriveVaultAuthority(maker, 1)
	assert.Nil(t, err)
	assert.Nil(t, ctrl.IssueCoins(db, vault.Address(), coin.NewCoin(100, 0, "FOO")))

	thief := bartertest.NewKey()
	forged := bartertest.NewCondition()

	// A condition that does not hash to the vault address cannot spend
	// from it.
	err = moveAsset(db, ctrl, vault.Address(), thief, coin.NewCoin(100, 0, "FOO"), forged)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	balance, err := ctrl.Balance(db, vault.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(100), balance[0].Whole)
}

func TestMoveAssetWithValidWitness(t *testing.T) {
	db := store.MemStore()
	ctrl := cash.NewController()

	maker := bartertest.NewKey()
	vault, _, err := DeriveVaultAuthority(maker, 1)
	assert.Nil(t, err)
	assert.Nil(t, ctrl.IssueCoins(db, vault.Address(), coin.NewCoin(100, 0, "FOO")))

	dest := bartertest.NewKey()
	// Reproducing the exact condition bytes is the proof of authority.
	witness := VaultCondition(maker, 1, uint8(vaultSalt(t, maker, 1)))
	assert.Nil(t, moveAsset(db, ctrl, vault.Address(), dest, coin.NewCoin(100, 0, "FOO"), witness))

	balance, err := ctrl.Balance(db, dest)
	assert.Nil(t, err)
	assert.Equal(t, int64(100), balance[0].Whole)
}

func vaultSalt(t testing.TB, maker []byte, id uint64) uint8 {
	t.Helper()
	_, salt, err := DeriveVaultAuthority(maker, id)
	assert.Nil(t, err)
	return salt
}
