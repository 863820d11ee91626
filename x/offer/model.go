package offer

import (
	"encoding/binary"

	"github.com/barter-network/barter"
	"github.com/barter-network/barter/coin"
	"github.com/barter-network/barter/errors"
	"github.com/barter-network/barter/orm"
)

// BucketName is where we store the offers.
const BucketName = "offer"

// maxAuthoritySalt is the first salt value tried when deriving a vault
// authority. The search walks downwards to zero.
const maxAuthoritySalt = 255

var _ orm.Model = (*Offer)(nil)

// Validate ensures the offer is well formed before it hits the store.
func (o *Offer) Validate() error {
	if err := o.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if !coin.IsCC(o.AssetA) {
		return errors.Wrapf(errors.ErrCurrency, "offered asset: %q", o.AssetA)
	}
	if !coin.IsCC(o.AssetB) {
		return errors.Wrapf(errors.ErrCurrency, "wanted asset: %q", o.AssetB)
	}
	if o.AssetA == o.AssetB {
		return errors.Wrap(errors.ErrInput, "offered and wanted assets are the same")
	}
	if o.WantedAmount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "non-positive wanted amount: %d", o.WantedAmount)
	}
	if o.WantedAmount > coin.MaxInt {
		return errors.Wrapf(errors.ErrOverflow, "wanted amount: %d", o.WantedAmount)
	}
	if o.AuthoritySalt > maxAuthoritySalt {
		return errors.Wrapf(errors.ErrInput, "authority salt: %d", o.AuthoritySalt)
	}
	return nil
}

// NewBucket returns a bucket for keeping offers, keyed by
// offerKey(maker, id).
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// offerKey builds the primary key of an offer. The identifier is
// encoded big endian so that keys of one maker sort by id.
func offerKey(maker barter.Address, id uint64) []byte {
	key := make([]byte, len(maker)+8)
	copy(key, maker)
	binary.BigEndian.PutUint64(key[len(maker):], id)
	return key
}

// VaultCondition returns the condition controlling the vault wallet of
// the offer with the given identity. Any party can recompute it, which
// is what makes the custody trustless.
func VaultCondition(maker barter.Address, id uint64, salt uint8) barter.Condition {
	seed := make([]byte, len(maker)+9)
	copy(seed, maker)
	binary.BigEndian.PutUint64(seed[len(maker):], id)
	seed[len(maker)+8] = salt
	return barter.NewCondition("offer", "vault", seed)
}

// DeriveVaultAuthority finds the vault condition for a new offer. Salts
// are tried from the highest value downwards and a candidate is
// rejected when its address collides with the maker wallet. The search
// is deterministic, so make and take derive the same authority.
func DeriveVaultAuthority(maker barter.Address, id uint64) (barter.Condition, uint8, error) {
	for salt := maxAuthoritySalt; salt >= 0; salt-- {
		cond := VaultCondition(maker, id, uint8(salt))
		addr := cond.Address()
		if addr.Validate() != nil || addr.Equals(maker) {
			continue
		}
		return cond, uint8(salt), nil
	}
	return nil, 0, errors.Wrapf(errors.ErrState, "no vault authority for %s/%d", maker, id)
}
