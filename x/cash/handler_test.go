package cash

import (
	"context"
	"testing"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/bartertest"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHandler(t *testing.T) {
	source := bartertest.NewCondition()
	dest := bartertest.NewKey()

	cases := map[string]struct {
		signer  barter.Condition
		msg     *SendMsg
		wantErr *errors.Error
		// wantMoved is the expected destination balance after Deliver.
		wantMoved int64
	}{
		"happy path": {
			signer: source,
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest,
				Amount:      coin.NewCoinp(10, 0, "FOO"),
			},
			wantMoved: 10,
		},
		"source did not sign": {
			signer: bartertest.NewCondition(),
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest,
				Amount:      coin.NewCoinp(10, 0, "FOO"),
			},
			wantErr: errors.ErrUnauthorized,
		},
		"missing amount": {
			signer: source,
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest,
			},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			signer: source,
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest,
				Amount:      coin.NewCoinp(-10, 0, "FOO"),
			},
			wantErr: errors.ErrAmount,
		},
		"insufficient funds": {
			signer: source,
			msg: &SendMsg{
				Source:      source.Address(),
				Destination: dest,
				Amount:      coin.NewCoinp(1000, 0, "FOO"),
			},
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			require.NoError(t, ctrl.IssueCoins(db, source.Address(), coin.NewCoin(100, 0, "FOO")))

			auth := &bartertest.CtxAuth{Key: "auth"}
			ctx := auth.SetConditions(context.Background(), tc.signer)
			h := SendHandler{auth: auth, control: ctrl}
			tx := &bartertest.Tx{Msg: tc.msg}

			if tc.wantErr == nil {
				res, err := h.Check(ctx, db, tx)
				require.NoError(t, err)
				assert.Equal(t, sendTxCost, res.GasAllocated)
			}

			_, err := h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "deliver: %+v", err)
				return
			}
			require.NoError(t, err)

			got, err := ctrl.Balance(db, dest)
			require.NoError(t, err)
			assert.Equal(t, coin.Coins{coin.NewCoinp(tc.wantMoved, 0, "FOO")}, got)
		})
	}
}

func TestSendMsgValidate(t *testing.T) {
	addr := bartertest.NewKey()

	longMemo := make([]byte, 129)
	for i := range longMemo {
		longMemo[i] = 'x'
	}

	cases := map[string]struct {
		msg     *SendMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &SendMsg{Source: addr, Destination: addr, Amount: coin.NewCoinp(1, 0, "FOO"), Memo: "thanks"},
		},
		"no amount": {
			msg:     &SendMsg{Source: addr, Destination: addr},
			wantErr: errors.ErrAmount,
		},
		"invalid ticker": {
			msg:     &SendMsg{Source: addr, Destination: addr, Amount: coin.NewCoinp(1, 0, "x")},
			wantErr: errors.ErrCurrency,
		},
		"missing source": {
			msg:     &SendMsg{Destination: addr, Amount: coin.NewCoinp(1, 0, "FOO")},
			wantErr: errors.ErrInput,
		},
		"missing destination": {
			msg:     &SendMsg{Source: addr, Amount: coin.NewCoinp(1, 0, "FOO")},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			msg:     &SendMsg{Source: addr, Destination: addr, Amount: coin.NewCoinp(1, 0, "FOO"), Memo: string(longMemo)},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}
