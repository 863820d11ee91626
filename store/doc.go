/*
Package store provides the in-memory implementations of the KVStore
interfaces defined in the root package.

MemStore is a btree backed store useful for tests and tooling.
BTreeCacheWrap layers a scratch-pad cache over any KVStore so that a
group of writes can be committed or discarded together. This is the
mechanism behind the savepoint decorator that gives every handler its
all-or-nothing execution unit.
*/
package store
