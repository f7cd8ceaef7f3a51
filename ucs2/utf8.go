// Package ucs2 implements the UTF-8 <-> UCS-2 translation needed when a
// message contains code points outside the GSM-7 alphabet, including the
// UTF-16 surrogate-pair bridging the 16-bit DCS payload requires.
package ucs2

import (
	"fmt"
	"unicode/utf8"

	"github.com/ftl/gsm-pdu/gsmerr"
)

// DecodeRune reads one code point from the front of b, returning the rune
// and the number of bytes consumed. It fails with gsmerr.MalformedUtf8 if b
// starts with an invalid or truncated UTF-8 sequence. Go's own UTF-8
// decoding (the same mechanism every "range over string" in this codebase
// relies on) already implements TS 23.038's "1-4 byte sequence with
// validated continuation bytes" rule; there is no separate ecosystem
// library for this, so the standard library is used directly here.
func DecodeRune(b []byte) (rune, int, error) {
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, fmt.Errorf("%w: invalid sequence at %v", gsmerr.MalformedUtf8, b)
	}
	return r, size, nil
}

// AppendRune appends the UTF-8 encoding of r to buf.
func AppendRune(buf []byte, r rune) []byte {
	return utf8.AppendRune(buf, r)
}
