package cash

import (
	"context"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/x"
)

// pay send cost up-front
const sendTxCost int64 = 100

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, control CoinMover) {
	r.Handle(&SendMsg{}, SendHandler{auth: auth, control: control})
}

// SendHandler moves coins from one wallet to another.
type SendHandler struct {
	auth    x.Authenticator
	control CoinMover
}

var _ barter.Handler = SendHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from source to destination if
// all preconditions are met.
func (h SendHandler) Deliver(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := h.control.MoveCoins(db, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SendHandler) validate(ctx context.Context, tx barter.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Source must authorize the transfer.
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.ErrUnauthorized
	}

	return &msg, nil
}
