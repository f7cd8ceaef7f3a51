// Package address implements the TS 23.040 address field: a length byte,
// a type-of-address byte, and a BCD (or, for alphanumeric addresses,
// packed GSM-7) body.
package address

import (
	"fmt"

	"github.com/ftl/gsm-pdu/bcd"
	"github.com/ftl/gsm-pdu/gsm7"
	"github.com/ftl/gsm-pdu/gsmerr"
)

// TON identifies the type-of-number an Address carries.
type TON byte

const (
	International TON = iota
	National
	Alphabetic
)

const (
	toaInternational = 0x91
	toaNational      = 0x81
	toaAlphabetic    = 0xd0

	tonMask       = 0x70
	tonShift      = 4
	tonAddrBitSet = 0x80
)

// Address is a decoded phone number (or alphanumeric sender) together
// with its type-of-number.
type Address struct {
	Digits string
	Type   TON
}

// Encode renders addr's type-of-address byte and body. For International
// and National it BCD-encodes Digits (a leading "+" must already have been
// stripped by the caller); for Alphabetic it GSM-7 packs Digits. It
// returns the body alongside the count the caller needs for the address's
// length byte: the digit count, or for Alphabetic the nibble count of the
// packed body.
func Encode(addr Address) (toa byte, body []byte, count int, err error) {
	switch addr.Type {
	case International:
		body, err = bcd.Encode(addr.Digits)
		if err != nil {
			return 0, nil, 0, err
		}
		return toaInternational, body, len(addr.Digits), nil

	case National:
		body, err = bcd.Encode(addr.Digits)
		if err != nil {
			return 0, nil, 0, err
		}
		return toaNational, body, len(addr.Digits), nil

	case Alphabetic:
		septets := make([]byte, 0, len(addr.Digits))
		for _, r := range addr.Digits {
			sym, ok := gsm7.Encode(r)
			if !ok {
				return 0, nil, 0, fmt.Errorf("%w: %q has no GSM-7 representation", gsmerr.UnsupportedAlphabet, r)
			}
			if sym.Escaped {
				septets = append(septets, gsm7.Escape, sym.Value)
			} else {
				septets = append(septets, sym.Value)
			}
		}
		body = gsm7.Pack(septets)
		// The length field for an alphanumeric address counts nibbles of
		// packed data, same as a numeric address counts nibbles of BCD
		// digits; a whole number of octets is always an even nibble count.
		return toaAlphabetic, body, len(body) * 2, nil

	default:
		return 0, nil, 0, fmt.Errorf("%w: %d", gsmerr.UnsupportedAddressType, addr.Type)
	}
}

// Decode parses a type-of-address byte and its following body into an
// Address. digitCount is the nibble count the address length field
// declared, whatever the type-of-number; octetCount is how many body
// octets that implies and is how far the caller should advance its cursor.
func Decode(toa byte, body []byte, digitCount int) (Address, int, error) {
	if toa&tonAddrBitSet == 0 {
		return Address{}, 0, fmt.Errorf("%w: TOA %#x has address bit clear", gsmerr.UnsupportedAddressType, toa)
	}

	ton := TON((toa & tonMask) >> tonShift)
	switch {
	case toa == toaInternational || ton == 0x01:
		octetCount := (digitCount + 1) / 2
		digits, err := bcd.Decode(body, digitCount)
		if err != nil {
			return Address{}, 0, err
		}
		return Address{Digits: "+" + digits, Type: International}, octetCount, nil

	case toa == toaNational || ton == 0x02:
		octetCount := (digitCount + 1) / 2
		digits, err := bcd.Decode(body, digitCount)
		if err != nil {
			return Address{}, 0, err
		}
		return Address{Digits: digits, Type: National}, octetCount, nil

	case toa == toaAlphabetic || ton == 0x05:
		octetCount := (digitCount + 1) / 2
		septetCount := (octetCount * 8) / 7
		septets := gsm7.Unpack(body, 0, septetCount)
		text := make([]rune, 0, len(septets))
		for i := 0; i < len(septets); i++ {
			if septets[i] == gsm7.Escape && i+1 < len(septets) {
				i++
				text = append(text, gsm7.DecodeExtension(septets[i]))
				continue
			}
			text = append(text, gsm7.Decode(septets[i]))
		}
		return Address{Digits: string(text), Type: Alphabetic}, octetCount, nil

	default:
		return Address{}, 0, fmt.Errorf("%w: TON %#x", gsmerr.UnsupportedAddressType, ton)
	}
}
