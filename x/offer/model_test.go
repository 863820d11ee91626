package offer

import (
	"bytes"
	"testing"

	"github.com/barter-network/barter/bartertest"
	"github.com/barter-network/barter/bartertest/assert"
	"github.com/barter-network/barter/errors"
)

func TestOfferKeyEncoding(t *testing.T) {
	maker := bartertest.NewKey()

	key := offerKey(maker, 0x0102)
	if want := len(maker) + 8; len(key) != want {
		t.Fatalf("want %d byte key, got %d", want, len(key))
	}
	if !bytes.HasPrefix(key, maker) {
		t.Fatal("key must start with the maker address")
	}
	wantID := []byte{0, 0, 0, 0, 0, 0, 1, 2}
	if got := key[len(maker):]; !bytes.Equal(wantID, got) {
		t.Fatalf("want big endian id %v, got %v", wantID, got)
	}

	// Keys of one maker must sort by the offer identifier.
	if bytes.Compare(offerKey(maker, 1), offerKey(maker, 256)) >= 0 {
		t.Fatal("keys do not sort by id")
	}
}

func TestDeriveVaultAuthorityDeterministic(t *testing.T) {
	maker := bartertest.NewKey()

	cond, salt, err := DeriveVaultAuthority(maker, 7)
	assert.Nil(t, err)

	again, saltAgain, err := DeriveVaultAuthority(maker, 7)
	assert.Nil(t, err)
	if !cond.Equals(again) {
		t.Fatalf("derivation is not deterministic: %s != %s", cond, again)
	}
	assert.Equal(t, salt, saltAgain)

	// Anyone can rebuild the condition from the offer identity.
	if rebuilt := VaultCondition(maker, 7, salt); !cond.Equals(rebuilt) {
		t.Fatalf("cannot rebuild the vault condition: %s != %s", cond, rebuilt)
	}

	ext, typ, _, err := cond.Parse()
	assert.Nil(t, err)
	assert.Equal(t, "offer", ext)
	assert.Equal(t, "vault", typ)

	if cond.Address().Equals(maker) {
		t.Fatal("vault address must differ from the maker wallet")
	}
}

func TestDeriveVaultAuthorityPerOffer(t *testing.T) {
	maker := bartertest.NewKey()
	other := bartertest.NewKey()

	a, _, err := DeriveVaultAuthority(maker, 1)
	assert.Nil(t, err)
	b, _, err := DeriveVaultAuthority(maker, 2)
	assert.Nil(t, err)
	c, _, err := DeriveVaultAuthority(other, 1)
	assert.Nil(t, err)

	if a.Address().Equals(b.Address()) {
		t.Fatal("different offers of one maker share a vault")
	}
	if a.Address().Equals(c.Address()) {
		t.Fatal("different makers share a vault")
	}
}

func TestOfferValidate(t *testing.T) {
	maker := bartertest.NewKey()

	cases := map[string]struct {
		offer   Offer
		wantErr *errors.Error
	}{
		"valid offer": {
			offer: Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "BAR", WantedAmount: 50, AuthoritySalt: 255},
		},
		"missing maker": {
			offer:   Offer{OfferId: 1, AssetA: "FOO", AssetB: "BAR", WantedAmount: 50},
			wantErr: errors.ErrInput,
		},
		"bad offered ticker": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "foo", AssetB: "BAR", WantedAmount: 50},
			wantErr: errors.ErrCurrency,
		},
		"bad wanted ticker": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "x", WantedAmount: 50},
			wantErr: errors.ErrCurrency,
		},
		"same asset on both sides": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "FOO", WantedAmount: 50},
			wantErr: errors.ErrInput,
		},
		"zero wanted amount": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "BAR"},
			wantErr: errors.ErrAmount,
		},
		"negative wanted amount": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "BAR", WantedAmount: -4},
			wantErr: errors.ErrAmount,
		},
		"wanted amount overflow": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "BAR", WantedAmount: 1000000000000000},
			wantErr: errors.ErrOverflow,
		},
		"salt out of range": {
			offer:   Offer{OfferId: 1, Maker: maker, AssetA: "FOO", AssetB: "BAR", WantedAmount: 50, AuthoritySalt: 256},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.offer.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
		})
	}
}
