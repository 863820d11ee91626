package offer

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
)

const (
	pathMakeOfferMsg = "offer/make"
	pathTakeOfferMsg = "offer/take"
)

var (
	_ barter.Msg = (*MakeOfferMsg)(nil)
	_ barter.Msg = (*TakeOfferMsg)(nil)
)

// Path fulfills barter.Msg interface to allow routing
func (MakeOfferMsg) Path() string {
	return pathMakeOfferMsg
}

// Validate makes sure that this is sensible
func (m *MakeOfferMsg) Validate() error {
	// Maker is optional and defaults to the main signer.
	if m.Maker != nil {
		if err := m.Maker.Validate(); err != nil {
			return errors.Wrap(err, "maker")
		}
	}
	if !coin.IsCC(m.AssetA) {
		return errors.Wrapf(errors.ErrCurrency, "offered asset: %q", m.AssetA)
	}
	if !coin.IsCC(m.AssetB) {
		return errors.Wrapf(errors.ErrCurrency, "wanted asset: %q", m.AssetB)
	}
	if m.AssetA == m.AssetB {
		return errors.Wrap(errors.ErrInput, "offered and wanted assets are the same")
	}
	if m.OfferedAmount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive offered amount: %d", m.OfferedAmount)
	}
	if m.OfferedAmount > coin.MaxInt {
		return errors.Wrapf(errors.ErrOverflow, "offered amount: %d", m.OfferedAmount)
	}
	if m.WantedAmount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive wanted amount: %d", m.WantedAmount)
	}
	if m.WantedAmount > coin.MaxInt {
		return errors.Wrapf(errors.ErrOverflow, "wanted amount: %d", m.WantedAmount)
	}
	return nil
}

// Path fulfills barter.Msg interface to allow routing
func (TakeOfferMsg) Path() string {
	return pathTakeOfferMsg
}

// Validate makes sure that this is sensible
func (m *TakeOfferMsg) Validate() error {
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	return nil
}
