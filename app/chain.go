package app

import (
	"context"

	"github.com/barter-network/barter"
)

// Decorators holds a chain of decorators, not yet resolved by a
// Handler. Use WithHandler to attach the final dispatcher.
type Decorators struct {
	chain []barter.Decorator
}

// ChainDecorators takes a chain of decorators, and upon adding a
// final Handler, returns a Handler that will execute this whole stack.
//
//   app.ChainDecorators(
//     utils.NewSavepoint().OnCheck().OnDeliver(),
//   ).WithHandler(router)
func ChainDecorators(chain ...barter.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the current chain
func (d Decorators) Chain(chain ...barter.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler resolves the stack and returns a Handler
func (d Decorators) WithHandler(h barter.Handler) barter.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = chained{decorator: d.chain[i], next: h}
	}
	return h
}

// chained is a decorator bound to the rest of the stack below it.
type chained struct {
	decorator barter.Decorator
	next      barter.Handler
}

var _ barter.Handler = chained{}

func (c chained) Check(ctx context.Context, store barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return c.decorator.Check(ctx, store, tx, c.next)
}

func (c chained) Deliver(ctx context.Context, store barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	return c.decorator.Deliver(ctx, store, tx, c.next)
}
