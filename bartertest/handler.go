package bartertest

import (
	"context"
	"sync/atomic"

	"github.com/barter-network/barter"
)

// Handler is a mock implementation of the barter.Handler interface.
//
// Use WithError or the result attributes to configure the responses.
// This mock counts the method calls.
type Handler struct {
	checkCall   int64
	deliverCall int64

	// CheckResult is returned by the Check method.
	CheckResult barter.CheckResult
	// CheckErr if set is returned by the Check method.
	CheckErr error

	// DeliverResult is returned by the Deliver method.
	DeliverResult barter.DeliverResult
	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error
}

var _ barter.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	atomic.AddInt64(&h.checkCall, 1)
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	atomic.AddInt64(&h.deliverCall, 1)
	res := h.DeliverResult
	return &res, h.DeliverErr
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return int(atomic.LoadInt64(&h.checkCall))
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return int(atomic.LoadInt64(&h.deliverCall))
}

// CallCount returns the total number of method calls.
func (h *Handler) CallCount() int {
	return h.CheckCallCount() + h.DeliverCallCount()
}
