package offer

import (
	"github.com/barter-network/barter/errors"
)

var (
	// ErrVaultWithdrawal is returned when the offered funds cannot be
	// moved out of the vault to the taker.
	ErrVaultWithdrawal = errors.Register(1200, "failed vault withdrawal")

	// ErrVaultClosure is returned when the vault wallet cannot be
	// emptied and removed after a take.
	ErrVaultClosure = errors.Register(1201, "failed vault closure")

	// ErrTakerBalance is returned when the taker cannot pay the wanted
	// amount to the maker.
	ErrTakerBalance = errors.Register(1202, "insufficient taker balance")
)
