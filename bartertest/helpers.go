package bartertest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/barter-network/barter"
)

// condSeq guarantees each generated condition is unique within a
// single test binary run.
var condSeq uint64

// NewCondition returns a new, unique condition. Use it whenever a
// test needs an arbitrary identity.
func NewCondition() barter.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&condSeq, 1))
	return barter.NewCondition("btest", "any", data)
}

// NewKey returns the address of a new, unique condition.
func NewKey() barter.Address {
	return NewCondition().Address()
}
