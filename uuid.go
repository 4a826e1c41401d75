package ble

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/rigado/ble-eddystone/sliceops"
)

// Eddystone service identifier, assigned by the Bluetooth SIG.
const (
	EddystoneUUID16     uint16 = 0xFEAA
	EddystoneServiceKey        = "feaa"
)

// UUID is a 16, 32 or 128-bit Bluetooth UUID held in wire (little-endian) order.
type UUID []byte

// UUID16 converts a uint16 (such as 0xFEAA) to a UUID.
func UUID16(i uint16) UUID {
	return UUID{byte(i), byte(i >> 8)}
}

// EddystoneUUID returns the 16-bit Eddystone service UUID.
func EddystoneUUID() UUID {
	return UUID16(EddystoneUUID16)
}

// Parse parses a standard-format UUID string, such as "1800" or
// "34DA3AD1-7110-41A1-B1EF-4430F509CDE7".
func Parse(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse uuid %q", s)
	}

	switch len(b) {
	case 2, 4, 16:
	default:
		return nil, errors.Errorf("invalid uuid length %v", len(b))
	}

	return UUID(Reverse(b)), nil
}

// MustParse parses a standard-format UUID string, like Parse, but panics in case of error.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID, in bytes.
// BLE UUIDs are either 2, 4, or 16 bytes.
func (u UUID) Len() int {
	return len(u)
}

// String hex-encodes a UUID in most significant byte first order.
func (u UUID) String() string {
	return hex.EncodeToString(Reverse(u))
}

// Equal reports whether u and v represent the same UUID.
func (u UUID) Equal(v UUID) bool {
	return u.String() == v.String()
}

// Reverse returns a reversed copy of u.
func Reverse(u []byte) []byte {
	return sliceops.SwapBuf(u)
}
