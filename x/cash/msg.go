package cash

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
)

const (
	pathSendMsg = "cash/send"

	maxMemoSize int = 128
)

var _ barter.Msg = (*SendMsg)(nil)

// Path fulfills barter.Msg interface to allow routing
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %#v", m.Amount)
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.GetMemo()) > maxMemoSize {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	return nil
}
