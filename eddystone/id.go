package eddystone

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Kind tags the beacon format an identity belongs to. New formats add
// their own Kind values.
type Kind string

const KindEddystone Kind = "eddystone"

const (
	idLen        = 16
	namespaceLen = 10
)

// BeaconID is an immutable beacon identity: a format tag plus a 16 byte
// identifier (10 byte namespace followed by a 6 byte instance for Eddystone).
// BeaconIDs are comparable with ==.
type BeaconID struct {
	kind Kind
	id   [idLen]byte
}

func newBeaconID(k Kind, b []byte) BeaconID {
	bid := BeaconID{kind: k}
	copy(bid.id[:], b)
	return bid
}

func (b BeaconID) Kind() Kind {
	return b.kind
}

// Bytes returns a copy of the identifier.
func (b BeaconID) Bytes() []byte {
	out := make([]byte, idLen)
	copy(out, b.id[:])
	return out
}

// Namespace returns the first 10 bytes of the identifier.
func (b BeaconID) Namespace() []byte {
	return b.Bytes()[:namespaceLen]
}

// Instance returns the last 6 bytes of the identifier.
func (b BeaconID) Instance() []byte {
	return b.Bytes()[namespaceLen:]
}

func (b BeaconID) IsZero() bool {
	return b == BeaconID{}
}

func (b BeaconID) Equal(o BeaconID) bool {
	return b.kind == o.kind && b.id == o.id
}

// String renders the identifier as 32 lowercase hex digits.
func (b BeaconID) String() string {
	return hex.EncodeToString(b.id[:])
}

func (b BeaconID) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses the 32 hex digit form produced by String.
func (b *BeaconID) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(err, "beacon id")
	}

	if len(raw) != idLen {
		return errors.Errorf("beacon id: have %v bytes, want %v", len(raw), idLen)
	}

	*b = newBeaconID(KindEddystone, raw)
	return nil
}
