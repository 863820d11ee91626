package bartertest

import (
	"context"

	"github.com/barter-network/barter"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the provided conditions,
// independent of the context.
type Auth struct {
	// Signer is condition to be returned by this authenticator. This
	// is a convenience attribute if only one signer is needed.
	Signer barter.Condition

	// Signers is a collection of conditions to be returned by this
	// authenticator. The main signer comes first.
	Signers []barter.Condition
}

func (a *Auth) signers() []barter.Condition {
	if a.Signer != nil {
		return append([]barter.Condition{a.Signer}, a.Signers...)
	}
	return a.Signers
}

// GetConditions returns the fixed set of conditions.
func (a *Auth) GetConditions(context.Context) []barter.Condition {
	return a.signers()
}

// HasAddress returns true if any condition matches this address.
func (a *Auth) HasAddress(ctx context.Context, addr barter.Address) bool {
	for _, s := range a.signers() {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an x.Authenticator implementation that reads conditions
// from the context. Each instance is bound to a context key.
type CtxAuth struct {
	Key string
}

type ctxAuthKey struct{ key string }

// SetConditions stores the given conditions in the context for later
// retrieval by this authenticator.
func (a *CtxAuth) SetConditions(ctx context.Context, conds ...barter.Condition) context.Context {
	return context.WithValue(ctx, ctxAuthKey{key: a.Key}, conds)
}

// GetConditions reveals the conditions stored in the context.
func (a *CtxAuth) GetConditions(ctx context.Context) []barter.Condition {
	conds, ok := ctx.Value(ctxAuthKey{key: a.Key}).([]barter.Condition)
	if !ok {
		return nil
	}
	return conds
}

// HasAddress returns true if any condition in the context matches
// this address.
func (a *CtxAuth) HasAddress(ctx context.Context, addr barter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
