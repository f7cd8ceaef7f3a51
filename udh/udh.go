// Package udh decodes the TS 23.040 User Data Header concatenation
// descriptor: the IEI/IED pair a modem prepends to user data when a long
// message has been split across several SMS-SUBMIT/SMS-DELIVER PDUs.
//
// The codec never builds a UDH on encode (see SPEC_FULL.md §4.I);
// multi-part message assembly beyond surfacing these fields is out of
// scope (see SPEC_FULL.md §1).
package udh

import "fmt"

const (
	iei8BitRef  = 0x00
	iei16BitRef = 0x08
)

// Concat is a concatenated-message descriptor: which part this PDU
// carries, how many parts the whole message has, and the reference
// number tying them together.
type Concat struct {
	Reference uint16
	Total     byte
	Part      byte
}

// Decode parses a UDH starting at data[0] (the UDH length byte). It
// returns the parsed Concat descriptor (zero value if the UDH carries no
// recognized concatenation IEI), and the number of octets the whole UDH
// occupies including its own length byte, which the caller uses to
// advance past it into the user-data septet/octet stream.
func Decode(data []byte) (Concat, int, error) {
	if len(data) < 1 {
		return Concat{}, 0, fmt.Errorf("UDH: empty")
	}
	udhLen := int(data[0])
	total := udhLen + 1
	if len(data) < total {
		return Concat{}, 0, fmt.Errorf("UDH: declared length %d exceeds available %d octets", udhLen, len(data)-1)
	}

	var concat Concat
	rest := data[1:total]
	for len(rest) >= 2 {
		iei := rest[0]
		ieiLen := int(rest[1])
		if len(rest) < 2+ieiLen {
			break
		}
		ied := rest[2 : 2+ieiLen]

		switch iei {
		case iei8BitRef:
			if ieiLen >= 3 {
				concat = Concat{Reference: uint16(ied[0]), Total: ied[1], Part: ied[2]}
			}
		case iei16BitRef:
			if ieiLen >= 4 {
				// REDESIGN FLAGS R5: the reference bytes are actually
				// combined here, not shifted and discarded.
				ref := uint16(ied[0])<<8 | uint16(ied[1])
				concat = Concat{Reference: ref, Total: ied[2], Part: ied[3]}
			}
		}

		rest = rest[2+ieiLen:]
	}

	return concat, total, nil
}

// SeptetFill returns how many septets of fill a UDH of udhOctets octets
// occupies in a GSM-7 user-data field: the septet stream that follows a
// UDH must start on a septet boundary, so the fill is rounded up rather
// than the UDH's raw octet count halved (REDESIGN FLAGS R4).
func SeptetFill(udhOctets int) int {
	return (udhOctets*8 + 6) / 7
}
