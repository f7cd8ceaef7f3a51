// Package gsmerr collects the sentinel errors shared by the PDU codec
// packages, so callers can errors.Is against a specific failure kind
// instead of parsing error strings.
package gsmerr

import "errors"

var (
	// MalformedHex is returned when a hex string contains a character
	// outside 0-9A-F. Lowercase is rejected, matching the original source.
	MalformedHex = errors.New("malformed hex string")

	// MalformedBCD is returned when a BCD-encoded octet stream contains
	// a nibble that is not a decimal digit in a non-terminal position.
	MalformedBCD = errors.New("malformed BCD digits")

	// MalformedUtf8 is returned when a UTF-8 byte sequence has a missing
	// or invalid continuation byte.
	MalformedUtf8 = errors.New("malformed UTF-8 sequence")

	// UnsupportedAddressType is returned for a type-of-address whose TON
	// is neither international, national, nor alphanumeric.
	UnsupportedAddressType = errors.New("unsupported address type")

	// UnsupportedAlphabet is returned when a DCS byte selects the 8-bit
	// data alphabet, which this codec does not decode.
	UnsupportedAlphabet = errors.New("unsupported data coding alphabet")

	// Oversize is returned when a message would exceed the protocol's
	// 160 septet / 70 UCS-2 unit user-data limit.
	Oversize = errors.New("message exceeds maximum PDU user data size")
)
