// Package hexcodec converts between binary PDU buffers and the uppercase
// hex strings used on the wire between a TE and a GSM modem's AT command
// interpreter.
//
// encoding/hex accepts both cases on decode; the PDUs this package reads
// are produced by modems that only ever emit uppercase, and the original
// source this codec is modelled on rejects lowercase outright. ToBinary
// keeps that strictness rather than silently widening the accepted
// alphabet.
package hexcodec

import (
	"fmt"

	"github.com/ftl/gsm-pdu/gsmerr"
)

const hexDigits = "0123456789ABCDEF"

// ByteToHex renders a single byte as two uppercase hex characters.
func ByteToHex(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}

// HexToByte parses two uppercase hex characters into a byte. It fails with
// gsmerr.MalformedHex if either character is not in 0-9A-F.
func HexToByte(hi, lo byte) (byte, error) {
	hiVal, err := nibble(hi)
	if err != nil {
		return 0, err
	}
	loVal, err := nibble(lo)
	if err != nil {
		return 0, err
	}
	return hiVal<<4 | loVal, nil
}

func nibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("%w: %q", gsmerr.MalformedHex, c)
	}
}

// ToHex renders a whole byte buffer as an uppercase hex string.
func ToHex(buf []byte) string {
	out := make([]byte, 0, len(buf)*2)
	for _, b := range buf {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}

// ToBinary parses a hex string of even length into a byte buffer. It fails
// with gsmerr.MalformedHex if the string has odd length or contains a
// non-hex (or lowercase) character.
func ToBinary(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", gsmerr.MalformedHex, len(s))
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		b, err := HexToByte(s[i], s[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
