package offer

import (
	"context"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/orm"
	"github.com/barter-network/barter/x"
	"github.com/barter-network/barter/x/cash"
)

const (
	makeOfferCost int64 = 300
	takeOfferCost int64 = 300
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, control cash.Controller) {
	bucket := NewBucket()
	r.Handle(&MakeOfferMsg{}, MakeOfferHandler{auth: auth, bucket: bucket, control: control})
	r.Handle(&TakeOfferMsg{}, TakeOfferHandler{auth: auth, bucket: bucket, control: control})
}

// MakeOfferHandler creates an offer and funds its vault.
type MakeOfferHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	control cash.Controller
}

var _ barter.Handler = MakeOfferHandler{}

// Check verifies the offer can be created and returns the cost.
func (h MakeOfferHandler) Check(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: makeOfferCost}, nil
}

// Deliver stores the offer and moves the offered funds from the maker
// wallet into the vault.
func (h MakeOfferHandler) Deliver(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, maker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key := offerKey(maker, msg.OfferId)
	vault, salt, err := DeriveVaultAuthority(maker, msg.OfferId)
	if err != nil {
		return nil, err
	}

	o := Offer{
		OfferId:       msg.OfferId,
		Maker:         maker,
		AssetA:        msg.AssetA,
		AssetB:        msg.AssetB,
		WantedAmount:  msg.WantedAmount,
		AuthoritySalt: uint32(salt),
	}
	if err := h.bucket.Put(db, key, &o); err != nil {
		return nil, errors.Wrap(err, "cannot store offer")
	}

	deposit := coin.NewCoin(msg.OfferedAmount, 0, msg.AssetA)
	// The maker wallet was authenticated in validate, no witness needed.
	if err := moveAsset(db, h.control, maker, vault.Address(), deposit, nil); err != nil {
		return nil, errors.Wrap(err, "cannot fund vault")
	}

	return &barter.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
// It resolves the maker address and ensures the maker can fund the
// vault, so that a doomed offer fails before touching any state.
func (h MakeOfferHandler) validate(ctx context.Context, db barter.KVStore, tx barter.Tx) (*MakeOfferMsg, barter.Address, error) {
	var msg MakeOfferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	maker := msg.Maker
	if maker == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		maker = signer.Address()
	}
	if !h.auth.HasAddress(ctx, maker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "maker did not sign")
	}

	if h.bucket.Has(db, offerKey(maker, msg.OfferId)) {
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "offer %d", msg.OfferId)
	}

	balance, err := h.control.Balance(db, maker)
	if err != nil {
		return nil, nil, errors.Wrap(err, "maker wallet")
	}
	deposit := coin.NewCoin(msg.OfferedAmount, 0, msg.AssetA)
	if !balance.Contains(deposit) {
		return nil, nil, errors.Wrapf(errors.ErrAmount, "maker cannot fund vault with %s", deposit.HumanString())
	}

	return &msg, maker, nil
}

// TakeOfferHandler fulfils an offer. The vault funds go to the taker,
// the wanted amount goes from the taker to the maker and the offer is
// destroyed. All legs apply atomically.
type TakeOfferHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	control cash.Controller
}

var _ barter.Handler = TakeOfferHandler{}

// Check verifies the take is possible and returns the cost.
func (h TakeOfferHandler) Check(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: takeOfferCost}, nil
}

// Deliver executes the swap legs in order:
//
//  1. full live vault balance of the offered asset to the taker
//  2. any residual vault funds back to the maker, then vault closure
//  3. the wanted amount from the taker to the maker
//
// and finally removes the offer. Run under a savepoint any failed leg
// rolls back the ones before it.
func (h TakeOfferHandler) Deliver(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, o, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	taker := x.MainSigner(ctx, h.auth).Address()
	vaultAddr := vault.Address()

	// The taker receives whatever the vault holds right now, which may
	// exceed the amount deposited at offer creation.
	balance, err := h.control.Balance(db, vaultAddr)
	if err != nil {
		return nil, errors.Wrapf(ErrVaultWithdrawal, "vault %s: %v", vaultAddr, err)
	}
	var payout *coin.Coin
	for _, c := range balance {
		if c.Ticker == o.AssetA {
			payout = c
			break
		}
	}
	if payout == nil || !payout.IsPositive() {
		return nil, errors.Wrapf(ErrVaultWithdrawal, "vault %s holds no %s", vaultAddr, o.AssetA)
	}
	if err := moveAsset(db, h.control, vaultAddr, taker, *payout, vault); err != nil {
		return nil, errors.Wrapf(ErrVaultWithdrawal, "vault %s: %v", vaultAddr, err)
	}

	// Donations in other currencies go back to the maker so that the
	// vault can be closed empty.
	residue, err := h.control.Balance(db, vaultAddr)
	if err != nil {
		return nil, errors.Wrapf(ErrVaultClosure, "vault %s: %v", vaultAddr, err)
	}
	for _, c := range residue {
		if !c.IsPositive() {
			continue
		}
		if err := moveAsset(db, h.control, vaultAddr, o.Maker, *c, vault); err != nil {
			return nil, errors.Wrapf(ErrVaultClosure, "vault %s: %v", vaultAddr, err)
		}
	}
	if err := h.control.CloseAccount(db, vaultAddr); err != nil {
		return nil, errors.Wrapf(ErrVaultClosure, "vault %s: %v", vaultAddr, err)
	}

	payment := coin.NewCoin(o.WantedAmount, 0, o.AssetB)
	if err := moveAsset(db, h.control, taker, o.Maker, payment, nil); err != nil {
		return nil, errors.Wrapf(ErrTakerBalance, "taker %s: %v", taker, err)
	}

	key := offerKey(o.Maker, msg.OfferId)
	if err := h.bucket.Delete(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot remove offer")
	}
	return &barter.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
// It loads the offer and reproduces the vault authority from scratch,
// refusing to continue if the stored salt does not match.
func (h TakeOfferHandler) validate(ctx context.Context, db barter.KVStore, tx barter.Tx) (*TakeOfferMsg, *Offer, barter.Condition, error) {
	var msg TakeOfferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	if x.MainSigner(ctx, h.auth) == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	var o Offer
	if err := h.bucket.One(db, offerKey(msg.Maker, msg.OfferId), &o); err != nil {
		return nil, nil, nil, errors.Wrapf(err, "offer %d", msg.OfferId)
	}

	vault, salt, err := DeriveVaultAuthority(o.Maker, o.OfferId)
	if err != nil {
		return nil, nil, nil, err
	}
	if uint32(salt) != o.AuthoritySalt {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "authority salt mismatch: %d != %d", salt, o.AuthoritySalt)
	}

	return &msg, &o, vault, nil
}
