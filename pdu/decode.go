package pdu

import (
	"fmt"
	"log"

	"github.com/ftl/gsm-pdu/address"
	"github.com/ftl/gsm-pdu/gsm7"
	"github.com/ftl/gsm-pdu/gsmerr"
	"github.com/ftl/gsm-pdu/timestamp"
	"github.com/ftl/gsm-pdu/ucs2"
	"github.com/ftl/gsm-pdu/udh"
)

// DecodePDU parses an SMS-DELIVER hex PDU into its fields. An SMS-SUBMIT
// laid out as EncodePDU writes it is accepted too: its message-reference
// byte is skipped, it carries no timestamp (Timestamp is left empty), and
// its destination address is reported as Sender; a validity-period field
// is not read. It is all-or-nothing: any failure returns a zero Message
// and an error, and callers should treat the PDU as one to drop rather
// than act on partially.
func DecodePDU(hexPDU string) (Message, error) {
	buf, err := binaryOf(hexPDU)
	if err != nil {
		return Message{}, err
	}

	cur := cursor{buf: buf}

	sca, err := decodeSCA(&cur)
	if err != nil {
		return Message{}, fmt.Errorf("decode SCA: %w", err)
	}

	pduType, err := cur.byteAt()
	if err != nil {
		return Message{}, fmt.Errorf("decode PDU type: %w", err)
	}
	udhiSet := pduType&pduTypeUDHIBit != 0
	isSubmit := pduType&0x03 == pduTypeSubmit // message-type indicator, bits 1:0
	if isSubmit {
		if _, err := cur.byteAt(); err != nil { // message reference, not interpreted
			return Message{}, fmt.Errorf("decode message reference: %w", err)
		}
	}

	senderAddr, err := decodeAddressNibbleForm(&cur)
	if err != nil {
		return Message{}, fmt.Errorf("decode sender address: %w", err)
	}

	if _, err := cur.byteAt(); err != nil { // protocol identifier, not interpreted
		return Message{}, fmt.Errorf("decode protocol identifier: %w", err)
	}

	dcs, err := cur.byteAt()
	if err != nil {
		return Message{}, fmt.Errorf("decode DCS: %w", err)
	}

	var ts string
	if !isSubmit {
		scts, err := cur.take(timestamp.Length)
		if err != nil {
			return Message{}, fmt.Errorf("decode SCTS: %w", err)
		}
		ts, err = timestamp.Decode(scts)
		if err != nil {
			return Message{}, fmt.Errorf("decode SCTS: %w", err)
		}
	}

	udLength, err := cur.byteAt()
	if err != nil {
		return Message{}, fmt.Errorf("decode UD length: %w", err)
	}

	udStart := cur.pos
	fill := 0
	var concatInfo ConcatInfo
	if udhiSet {
		concat, consumed, err := udh.Decode(buf[cur.pos:])
		if err != nil {
			return Message{}, fmt.Errorf("decode UDH: %w", err)
		}
		if _, err := cur.take(consumed); err != nil {
			return Message{}, fmt.Errorf("decode UDH: %w", err)
		}
		concatInfo = ConcatInfo{Present: true, Reference: concat.Reference, Total: concat.Total, Part: concat.Part}

		switch dcs & dcsAlphabetMask {
		case dcsUCS2:
			udLength -= byte(consumed)
		default:
			// REDESIGN FLAGS R4: fill is counted in septets the UDH's
			// octets round up to, not udh_octets/2. The text septets
			// follow that fill, so they are unpacked from the start of
			// the user data, past the fill.
			fill = udh.SeptetFill(consumed)
			cur.pos = udStart
		}
	}

	text, err := decodeUserData(&cur, dcs, int(udLength), fill)
	if err != nil {
		return Message{}, fmt.Errorf("decode user data: %w", err)
	}

	return Message{
		SCA:       sca,
		Sender:    senderAddr.Digits,
		Timestamp: ts,
		Concat:    concatInfo,
		Text:      text,
	}, nil
}

func decodeUserData(cur *cursor, dcs byte, udLength, fill int) (string, error) {
	switch dcs & dcsAlphabetMask {
	case dcsGSM7:
		if fill > udLength {
			return "", fmt.Errorf("UD length %d septets is shorter than the %d-septet UDH", udLength, fill)
		}
		octets, err := cur.take(septetOctets(udLength))
		if err != nil {
			return "", err
		}
		return decodeGSM7Text(octets, fill, udLength-fill), nil

	case dcsUCS2:
		octets, err := cur.take(udLength)
		if err != nil {
			return "", err
		}
		return decodeUCS2Text(octets), nil

	case dcs8Bit:
		return "", gsmerr.UnsupportedAlphabet

	default:
		return "", fmt.Errorf("%w: DCS %#x", gsmerr.UnsupportedAlphabet, dcs)
	}
}

func septetOctets(septetCount int) int {
	return (septetCount*7 + 7) / 8
}

func decodeGSM7Text(octets []byte, septetOffset, septetCount int) string {
	septets := gsm7.Unpack(octets, septetOffset, septetCount)
	text := make([]rune, 0, len(septets))
	for i := 0; i < len(septets); i++ {
		if septets[i] == gsm7.Escape && i+1 < len(septets) {
			i++
			text = append(text, gsm7.DecodeExtension(septets[i]))
			continue
		}
		text = append(text, gsm7.Decode(septets[i]))
	}
	return string(text)
}

func decodeUCS2Text(octets []byte) string {
	var state ucs2.SurrogateState
	text := make([]rune, 0, len(octets)/2)
	for i := 0; i+1 < len(octets); i += 2 {
		unit := uint16(octets[i])<<8 | uint16(octets[i+1])
		r, ready, lone := state.Feed(unit)
		if lone {
			log.Printf("gsm-pdu: unpaired UTF-16 surrogate at unit %#04x replaced with %q", unit, r)
		}
		if ready {
			text = append(text, r)
		}
	}
	return string(text)
}

func decodeSCA(cur *cursor) (string, error) {
	length, err := cur.byteAt()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	toa, err := cur.byteAt()
	if err != nil {
		return "", err
	}
	body, err := cur.take(int(length) - 1)
	if err != nil {
		return "", err
	}
	addr, _, err := address.Decode(toa, body, (int(length)-1)*2)
	if err != nil {
		return "", err
	}
	return addr.Digits, nil
}

func decodeAddressNibbleForm(cur *cursor) (address.Address, error) {
	nibbleCount, err := cur.byteAt()
	if err != nil {
		return address.Address{}, err
	}
	toa, err := cur.byteAt()
	if err != nil {
		return address.Address{}, err
	}
	octetCount := (int(nibbleCount) + 1) / 2
	body, err := cur.take(octetCount)
	if err != nil {
		return address.Address{}, err
	}
	addr, _, err := address.Decode(toa, body, int(nibbleCount))
	if err != nil {
		return address.Address{}, err
	}
	return addr, nil
}

// cursor walks a decode buffer, reporting truncation as an error instead
// of letting a short PDU panic with an index-out-of-range.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) byteAt() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, fmt.Errorf("PDU truncated at offset %d", c.pos)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, fmt.Errorf("PDU truncated at offset %d, need %d more octets", c.pos, n)
	}
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}
