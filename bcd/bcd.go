// Package bcd implements the nibble-swapped Binary-Coded Decimal encoding
// TS 23.040 uses for phone-number bodies and service-center timestamps.
package bcd

import (
	"fmt"

	"github.com/ftl/gsm-pdu/gsmerr"
)

// fillNibble terminates an odd-length digit string on the wire.
const fillNibble = 0x0f

// Encode packs a decimal digit string into nibble-swapped BCD octets. An
// odd-length input is padded with the fill nibble 0xF in the final octet's
// high nibble. It fails with gsmerr.MalformedBCD if digits contains a
// non-decimal character.
func Encode(digits string) ([]byte, error) {
	out := make([]byte, 0, (len(digits)+1)/2)
	for i := 0; i < len(digits); i += 2 {
		lo, err := digitNibble(digits[i])
		if err != nil {
			return nil, err
		}
		hi := byte(fillNibble)
		if i+1 < len(digits) {
			hi, err = digitNibble(digits[i+1])
			if err != nil {
				return nil, err
			}
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// Decode unpacks up to digitCount decimal digits from nibble-swapped BCD
// octets. It stops early if it encounters the fill nibble 0xF, which marks
// the end of an odd-length digit string. It fails with gsmerr.MalformedBCD
// if a non-terminal nibble is not a decimal digit.
func Decode(octets []byte, digitCount int) (string, error) {
	out := make([]byte, 0, digitCount)
	for _, b := range octets {
		if len(out) >= digitCount {
			break
		}
		lo := b & 0x0f
		if lo == fillNibble {
			break
		}
		digit, err := nibbleDigit(lo)
		if err != nil {
			return "", err
		}
		out = append(out, digit)

		if len(out) >= digitCount {
			break
		}
		hi := b >> 4
		if hi == fillNibble {
			break
		}
		digit, err = nibbleDigit(hi)
		if err != nil {
			return "", err
		}
		out = append(out, digit)
	}
	return string(out), nil
}

func digitNibble(c byte) (byte, error) {
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: %q", gsmerr.MalformedBCD, c)
	}
	return c - '0', nil
}

func nibbleDigit(n byte) (byte, error) {
	if n > 9 {
		return 0, fmt.Errorf("%w: nibble %X", gsmerr.MalformedBCD, n)
	}
	return n + '0', nil
}
