package utils

import (
	"context"
	"testing"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/bartertest"
	"github.com/barter-network/barter/bartertest/assert"
	"github.com/barter-network/barter/store"
)

// writingHandler writes a key and then returns the configured error.
type writingHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ barter.Handler = writingHandler{}

func (h writingHandler) Check(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	db.Set(h.key, h.value)
	return &barter.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx context.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	db.Set(h.key, h.value)
	return &barter.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	key, value := []byte("key"), []byte("value")

	cases := map[string]struct {
		savepoint   Savepoint
		handlerErr  error
		deliver     bool
		wantWritten bool
	}{
		"commit on deliver success": {
			savepoint:   NewSavepoint().OnDeliver(),
			deliver:     true,
			wantWritten: true,
		},
		"rollback on deliver failure": {
			savepoint:   NewSavepoint().OnDeliver(),
			deliver:     true,
			handlerErr:  bartertest.ErrTest,
			wantWritten: false,
		},
		"commit on check success": {
			savepoint:   NewSavepoint().OnCheck(),
			wantWritten: true,
		},
		"rollback on check failure": {
			savepoint:   NewSavepoint().OnCheck(),
			handlerErr:  bartertest.ErrTest,
			wantWritten: false,
		},
		"inactive savepoint does not rollback deliver": {
			savepoint:   NewSavepoint().OnCheck(),
			deliver:     true,
			handlerErr:  bartertest.ErrTest,
			wantWritten: true,
		},
		"inactive savepoint does not rollback check": {
			savepoint:   NewSavepoint().OnDeliver(),
			handlerErr:  bartertest.ErrTest,
			wantWritten: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			h := writingHandler{key: key, value: value, err: tc.handlerErr}
			tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "test/it"}}

			var err error
			if tc.deliver {
				_, err = tc.savepoint.Deliver(context.Background(), db, tx, h)
			} else {
				_, err = tc.savepoint.Check(context.Background(), db, tx, h)
			}

			if tc.handlerErr != nil {
				if !bartertest.ErrTest.Is(err) {
					t.Fatalf("handler error not propagated: %+v", err)
				}
			} else {
				assert.Nil(t, err)
			}

			if got := db.Has(key); got != tc.wantWritten {
				t.Fatalf("want written=%v, got %v", tc.wantWritten, got)
			}
		})
	}
}

func TestSavepointRequiresCacheableStore(t *testing.T) {
	// A plain KVStore cannot create savepoints. Wrap one to hide the
	// CacheWrap method.
	db := plainStore{store.MemStore()}
	h := writingHandler{key: []byte("key"), value: []byte("value")}
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "test/it"}}

	_, err := NewSavepoint().OnDeliver().Deliver(context.Background(), db, tx, h)
	if err == nil {
		t.Fatal("error expected")
	}
}

type plainStore struct {
	barter.KVStore
}
