package bartertest

import (
	"github.com/barter-network/barter"
	"github.com/barter-network/barter/errors"
)

// Tx is a mock barter.Tx implementation that returns a fixed message.
type Tx struct {
	// Msg is the message that this transaction is carrying.
	Msg barter.Msg

	// Err if set is returned by any method call.
	Err error
}

var _ barter.Tx = (*Tx)(nil)

// GetMsg returns the carried message or the configured error.
func (tx *Tx) GetMsg() (barter.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal serializes the carried message.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

// Unmarshal deserializes into the carried message.
func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return tx.Msg.Unmarshal(raw)
}

// Msg is a mock implementation of barter.Msg interface.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string

	// Serialized is returned by the Marshal method.
	Serialized []byte

	// Err if set is returned by Marshal, Unmarshal and Validate.
	Err error
}

var _ barter.Msg = (*Msg)(nil)

// Path returns the configured route path.
func (m *Msg) Path() string {
	return m.RoutePath
}

// Marshal returns the configured serialized form.
func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

// Unmarshal stores the raw bytes as the serialized form.
func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = raw
	return nil
}

// Validate returns the configured error.
func (m *Msg) Validate() error {
	return m.Err
}

// ErrTest is a public error used in tests to ensure that a failure is
// propagated and not replaced by another error on the way.
var ErrTest = errors.Register(111999, "test error")
