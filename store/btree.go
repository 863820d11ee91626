package store

import (
	"bytes"

	"github.com/barter-network/barter"
	"github.com/google/btree"
)

// item is a node stored in the btree. A node either carries a value or
// marks a deletion of the key in the backing store.
type item struct {
	key     []byte
	value   []byte
	deleted bool
}

func (i item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(item).key) < 0
}

func newSetItem(key, value []byte) item {
	return item{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	}
}

func newDeletedItem(key []byte) item {
	return item{
		key:     append([]byte(nil), key...),
		deleted: true,
	}
}

// memStore is a btree based KVStore. There is no persistence here.
type memStore struct {
	bt *btree.BTree
}

var _ barter.CacheableKVStore = (*memStore)(nil)

// MemStore returns a simple in-memory implementation useful for tests.
func MemStore() barter.CacheableKVStore {
	return &memStore{
		bt: btree.New(2),
	}
}

func (m *memStore) Get(key []byte) []byte {
	assertValidKey(key)
	res := m.bt.Get(item{key: key})
	if res == nil {
		return nil
	}
	return res.(item).value
}

func (m *memStore) Has(key []byte) bool {
	assertValidKey(key)
	return m.bt.Has(item{key: key})
}

func (m *memStore) Set(key, value []byte) {
	assertValidKey(key)
	m.bt.ReplaceOrInsert(newSetItem(key, value))
}

func (m *memStore) Delete(key []byte) {
	assertValidKey(key)
	m.bt.Delete(item{key: key})
}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back
func (m *memStore) CacheWrap() barter.KVCacheWrap {
	return NewBTreeCacheWrap(m)
}

// BTreeCacheWrap places a btree cache over a KVStore. All reads check
// the cache first and fall through to the backing store. All writes
// stay in the cache until Write is called.
type BTreeCacheWrap struct {
	bt   *btree.BTree
	back barter.KVStore
}

var _ barter.KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap initializes a btree to cache around this kv store.
func NewBTreeCacheWrap(kv barter.KVStore) *BTreeCacheWrap {
	return &BTreeCacheWrap{
		bt:   btree.New(2),
		back: kv,
	}
}

func (b *BTreeCacheWrap) Get(key []byte) []byte {
	assertValidKey(key)
	if res := b.bt.Get(item{key: key}); res != nil {
		it := res.(item)
		if it.deleted {
			return nil
		}
		return it.value
	}
	return b.back.Get(key)
}

func (b *BTreeCacheWrap) Has(key []byte) bool {
	assertValidKey(key)
	if res := b.bt.Get(item{key: key}); res != nil {
		return !res.(item).deleted
	}
	return b.back.Has(key)
}

// Set writes to the cache.
func (b *BTreeCacheWrap) Set(key, value []byte) {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(newSetItem(key, value))
}

// Delete marks the key as deleted in the cache.
func (b *BTreeCacheWrap) Delete(key []byte) {
	assertValidKey(key)
	b.bt.ReplaceOrInsert(newDeletedItem(key))
}

// CacheWrap layers another btree cache on top of this one.
// Don't change horses in mid-stream....
func (b *BTreeCacheWrap) CacheWrap() barter.KVCacheWrap {
	return NewBTreeCacheWrap(b)
}

// Write syncs with the underlying store and then cleans up.
func (b *BTreeCacheWrap) Write() error {
	b.bt.Ascend(func(i btree.Item) bool {
		it := i.(item)
		if it.deleted {
			b.back.Delete(it.key)
		} else {
			b.back.Set(it.key, it.value)
		}
		return true
	})
	b.Discard()
	return nil
}

// Discard invalidates this CacheWrap and releases all data.
func (b *BTreeCacheWrap) Discard() {
	b.bt.Clear(false)
}

func assertValidKey(key []byte) {
	if key == nil {
		panic("key is nil")
	}
}
