package orm

import (
	"fmt"
	"regexp"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using a
// ModelBucket.
type Model interface {
	barter.Persistent
	Validate() error
}

// ModelBucket is a prefixed subspace of the database that holds
// entities of a single model type.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in
	// the database.
	One(db barter.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database under given key. Any
	// existing entry under that key is overwritten.
	Put(db barter.KVStore, key []byte, m Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db barter.ReadOnlyKVStore, key []byte) bool

	// Delete removes an entity with given primary key from the
	// database. It returns ErrNotFound if an entity with given key does
	// not exist.
	Delete(db barter.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance operating on a subspace
// of the database prefixed with given name.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	return &modelBucket{
		prefix: append([]byte(name), ':'),
	}
}

type modelBucket struct {
	prefix []byte
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix. We copy
// into a new array rather than use append, as we don't want consecutive
// calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db barter.ReadOnlyKVStore, key []byte, dest Model) error {
	dbkey := mb.dbKey(key)
	raw := db.Get(dbkey)
	// An empty model serializes to zero bytes, so a nil result is only
	// a miss if the key is absent as well.
	if raw == nil && !db.Has(dbkey) {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (mb *modelBucket) Put(db barter.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	db.Set(mb.dbKey(key), raw)
	return nil
}

func (mb *modelBucket) Has(db barter.ReadOnlyKVStore, key []byte) bool {
	if len(key) == 0 {
		return false
	}
	return db.Has(mb.dbKey(key))
}

func (mb *modelBucket) Delete(db barter.KVStore, key []byte) error {
	dbkey := mb.dbKey(key)
	if !db.Has(dbkey) {
		return errors.Wrap(errors.ErrNotFound, "cannot delete")
	}
	db.Delete(dbkey)
	return nil
}
