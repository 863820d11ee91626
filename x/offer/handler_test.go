package offer

import (
	"context"
	"testing"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/app"
	"github.com/barter-network/barter/bartertest"
	"github.com/barter-network/barter/bartertest/assert"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/store"
	"github.com/barter-network/barter/x/cash"
	"github.com/barter-network/barter/x/utils"
)

// testEnv wires the full middleware stack the application uses, so
// that a failed operation rolls back all of its writes.
type testEnv struct {
	db    barter.CacheableKVStore
	auth  *bartertest.CtxAuth
	stack barter.Handler
	ctrl  cash.BucketController
}

func newTestEnv() *testEnv {
	auth := &bartertest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController()

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, ctrl)
	RegisterRoutes(r, auth, ctrl)

	return &testEnv{
		db:   store.MemStore(),
		auth: auth,
		ctrl: ctrl,
		stack: app.ChainDecorators(
			utils.NewSavepoint().OnCheck().OnDeliver(),
		).WithHandler(r),
	}
}

func (e *testEnv) signedBy(conds ...barter.Condition) context.Context {
	return e.auth.SetConditions(context.Background(), conds...)
}

func (e *testEnv) fund(t testing.TB, addr barter.Address, c coin.Coin) {
	t.Helper()
	assert.Nil(t, e.ctrl.IssueCoins(e.db, addr, c))
}

// balance returns the whole units of the given ticker held by addr. A
// missing wallet counts as zero.
func (e *testEnv) balance(t testing.TB, addr barter.Address, ticker string) int64 {
	t.Helper()
	coins, err := e.ctrl.Balance(e.db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	assert.Nil(t, err)
	for _, c := range coins {
		if c.Ticker == ticker {
			return c.Whole
		}
	}
	return 0
}

func (e *testEnv) deliver(ctx context.Context, msg barter.Msg) (*barter.DeliverResult, error) {
	return e.stack.Deliver(ctx, e.db, &bartertest.Tx{Msg: msg})
}

func (e *testEnv) check(ctx context.Context, msg barter.Msg) (*barter.CheckResult, error) {
	return e.stack.Check(ctx, e.db, &bartertest.Tx{Msg: msg})
}

func TestMakeOffer(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))

	res, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)
	assert.Equal(t, offerKey(maker.Address(), 1), res.Data)

	var o Offer
	assert.Nil(t, NewBucket().One(env.db, res.Data, &o))
	assert.Equal(t, maker.Address(), o.Maker)
	assert.Equal(t, "FOO", o.AssetA)
	assert.Equal(t, "BAR", o.AssetB)
	assert.Equal(t, int64(50), o.WantedAmount)

	vault, salt, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	assert.Equal(t, uint32(salt), o.AuthoritySalt)

	// The deposit left the maker wallet and sits in the vault.
	assert.Equal(t, int64(0), env.balance(t, maker.Address(), "FOO"))
	assert.Equal(t, int64(100), env.balance(t, vault.Address(), "FOO"))
}

func TestMakeOfferRequiresMakerSignature(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	intruder := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))

	_, err := env.deliver(env.signedBy(intruder), &MakeOfferMsg{
		OfferId:       1,
		Maker:         maker.Address(),
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, int64(100), env.balance(t, maker.Address(), "FOO"))
}

func TestMakeOfferInsufficientFunds(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(10, 0, "FOO"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.IsErr(t, errors.ErrAmount, err)

	// Nothing was persisted.
	if NewBucket().Has(env.db, offerKey(maker.Address(), 1)) {
		t.Fatal("an unfunded offer was persisted")
	}
	assert.Equal(t, int64(10), env.balance(t, maker.Address(), "FOO"))
}

func TestMakeOfferDuplicateId(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))

	msg := &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 20,
		WantedAmount:  50,
	}
	_, err := env.deliver(env.signedBy(maker), msg)
	assert.Nil(t, err)

	// A doomed transaction is already rejected at check time.
	_, err = env.check(env.signedBy(maker), msg)
	assert.IsErr(t, errors.ErrDuplicate, err)

	_, err = env.deliver(env.signedBy(maker), msg)
	assert.IsErr(t, errors.ErrDuplicate, err)

	// The failed attempt must not move any funds.
	assert.Equal(t, int64(80), env.balance(t, maker.Address(), "FOO"))
}

func TestTakeOffer(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(50, 0, "BAR"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	_, err = env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.Nil(t, err)

	// All three legs applied.
	assert.Equal(t, int64(100), env.balance(t, taker.Address(), "FOO"))
	assert.Equal(t, int64(0), env.balance(t, taker.Address(), "BAR"))
	assert.Equal(t, int64(50), env.balance(t, maker.Address(), "BAR"))
	assert.Equal(t, int64(0), env.balance(t, maker.Address(), "FOO"))

	// The offer is destroyed and the vault wallet removed.
	if NewBucket().Has(env.db, offerKey(maker.Address(), 1)) {
		t.Fatal("taken offer still in the store")
	}
	vault, _, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	_, err = env.ctrl.Balance(env.db, vault.Address())
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestTakeOfferTwice(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(200, 0, "BAR"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	take := &TakeOfferMsg{Maker: maker.Address(), OfferId: 1}
	_, err = env.deliver(env.signedBy(taker), take)
	assert.Nil(t, err)

	_, err = env.deliver(env.signedBy(taker), take)
	assert.IsErr(t, errors.ErrNotFound, err)

	// The second attempt must not double pay.
	assert.Equal(t, int64(150), env.balance(t, taker.Address(), "BAR"))
	assert.Equal(t, int64(50), env.balance(t, maker.Address(), "BAR"))
}

func TestTakeOfferInsufficientTakerBalance(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(10, 0, "BAR"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	_, err = env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.IsErr(t, ErrTakerBalance, err)

	// The earlier legs rolled back: the vault still holds the deposit,
	// the taker received nothing and the offer is still open.
	vault, _, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	assert.Equal(t, int64(100), env.balance(t, vault.Address(), "FOO"))
	assert.Equal(t, int64(0), env.balance(t, taker.Address(), "FOO"))
	assert.Equal(t, int64(10), env.balance(t, taker.Address(), "BAR"))
	assert.Equal(t, int64(0), env.balance(t, maker.Address(), "BAR"))
	if !NewBucket().Has(env.db, offerKey(maker.Address(), 1)) {
		t.Fatal("failed take destroyed the offer")
	}
}

func TestTakeOfferPaysOutLiveVaultBalance(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(50, 0, "BAR"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	// Anyone can top up the vault after creation. The taker receives
	// whatever the vault holds at take time.
	vault, _, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	env.fund(t, vault.Address(), coin.NewCoin(7, 0, "FOO"))

	_, err = env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(107), env.balance(t, taker.Address(), "FOO"))
}

func TestTakeOfferReturnsForeignResidueToMaker(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(50, 0, "BAR"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	// A donation in an unrelated currency must not block the vault
	// closure. It goes back to the maker.
	vault, _, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	env.fund(t, vault.Address(), coin.NewCoin(3, 0, "BAZ"))

	_, err = env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(100), env.balance(t, taker.Address(), "FOO"))
	assert.Equal(t, int64(3), env.balance(t, maker.Address(), "BAZ"))

	_, err = env.ctrl.Balance(env.db, vault.Address())
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestTakeMissingOffer(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, taker.Address(), coin.NewCoin(50, 0, "BAR"))

	_, err := env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 42,
	})
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Equal(t, int64(50), env.balance(t, taker.Address(), "BAR"))
}

func TestTakeOfferRequiresSigner(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))

	_, err := env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)

	_, err = env.deliver(context.Background(), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestCheckDoesNotPersist(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))

	res, err := env.check(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)
	if res.GasAllocated == 0 {
		t.Fatal("check must allocate gas")
	}

	// Check only validates, so nothing is written.
	if NewBucket().Has(env.db, offerKey(maker.Address(), 1)) {
		t.Fatal("check persisted an offer")
	}
	assert.Equal(t, int64(100), env.balance(t, maker.Address(), "FOO"))
}

func TestSwapConservesTotalSupply(t *testing.T) {
	env := newTestEnv()
	maker := bartertest.NewCondition()
	taker := bartertest.NewCondition()
	env.fund(t, maker.Address(), coin.NewCoin(100, 0, "FOO"))
	env.fund(t, taker.Address(), coin.NewCoin(70, 0, "BAR"))

	wallets := []barter.Address{maker.Address(), taker.Address()}
	vault, _, err := DeriveVaultAuthority(maker.Address(), 1)
	assert.Nil(t, err)
	wallets = append(wallets, vault.Address())

	total := func(ticker string) int64 {
		var sum int64
		for _, w := range wallets {
			sum += env.balance(t, w, ticker)
		}
		return sum
	}

	_, err = env.deliver(env.signedBy(maker), &MakeOfferMsg{
		OfferId:       1,
		AssetA:        "FOO",
		AssetB:        "BAR",
		OfferedAmount: 100,
		WantedAmount:  50,
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(100), total("FOO"))
	assert.Equal(t, int64(70), total("BAR"))

	_, err = env.deliver(env.signedBy(taker), &TakeOfferMsg{
		Maker:   maker.Address(),
		OfferId: 1,
	})
	assert.Nil(t, err)
	assert.Equal(t, int64(100), total("FOO"))
	assert.Equal(t, int64(70), total("BAR"))
}
