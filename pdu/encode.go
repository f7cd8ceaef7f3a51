package pdu

import (
	"fmt"

	"github.com/ftl/gsm-pdu/address"
	"github.com/ftl/gsm-pdu/gsm7"
	"github.com/ftl/gsm-pdu/gsmerr"
	"github.com/ftl/gsm-pdu/ucs2"
)

// decodeRunes validates and decodes a caller-supplied message into its
// code points up front, so DCS selection classifies by code point rather
// than by raw UTF-8 byte (REDESIGN FLAGS R1).
func decodeRunes(message string) ([]rune, error) {
	buf := []byte(message)
	runes := make([]rune, 0, len(buf))
	for len(buf) > 0 {
		r, size, err := ucs2.DecodeRune(buf)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
		buf = buf[size:]
	}
	return runes, nil
}

// gsm7Representable reports whether every rune in text has a GSM-7
// encoding per gsm7.Representable: direct, escaped, close-match, or a
// Latin-1 code point degraded to NPC7.
func gsm7Representable(text []rune) bool {
	for _, r := range text {
		if !gsm7.Representable(r) {
			return false
		}
	}
	return true
}

// encodeGSM7UD packs text's GSM-7 septets and returns the UD-length
// (septet count) and UD body together.
func encodeGSM7UD(text []rune) (udLength byte, body []byte, err error) {
	septets := make([]byte, 0, len(text))
	for _, r := range text {
		sym, ok := gsm7.Encode(r)
		if !ok {
			return 0, nil, fmt.Errorf("%w: %q", gsmerr.UnsupportedAlphabet, r)
		}
		if sym.Escaped {
			septets = append(septets, gsm7.Escape, sym.Value)
		} else {
			septets = append(septets, sym.Value)
		}
	}
	if len(septets) > MaxSeptets {
		return 0, nil, fmt.Errorf("%w: %d septets", gsmerr.Oversize, len(septets))
	}
	return byte(len(septets)), gsm7.Pack(septets), nil
}

// encodeUCS2UD converts text to UCS-2 code units (bridging supplementary
// code points into surrogate pairs) and returns the UD-length (octet
// count) and UD body together. The length is computed before it is
// written; there is no placeholder-then-patch step (REDESIGN FLAGS R2).
func encodeUCS2UD(text []rune) (udLength byte, body []byte, err error) {
	units := make([]uint16, 0, len(text))
	for _, r := range text {
		units = append(units, ucs2.EncodeRune(r)...)
	}
	if len(units) > MaxUCS2Units {
		return 0, nil, fmt.Errorf("%w: %d UCS-2 units", gsmerr.Oversize, len(units))
	}
	body = make([]byte, len(units)*2)
	for i, u := range units {
		body[i*2] = byte(u >> 8)
		body[i*2+1] = byte(u)
	}
	return byte(len(body)), body, nil
}

// EncodePDU assembles an SMS-SUBMIT TPDU for message addressed to
// recipient, using sca as the service-center address (empty meaning "use
// the modem's default"). It returns the uppercase hex PDU and the TPDU
// length the caller reports to the modem as AT+CMGS=<tpduLength>.
func EncodePDU(sca, recipient, message string) (hexPDU string, tpduLength int, err error) {
	runes, err := decodeRunes(message)
	if err != nil {
		return "", 0, err
	}

	buf := make([]byte, 0, 176)

	scaBytes, err := encodeSCA(sca)
	if err != nil {
		return "", 0, fmt.Errorf("encode SCA: %w", err)
	}
	buf = append(buf, scaBytes...)
	beginning := len(buf)

	buf = append(buf, pduTypeSubmit, messageRef)

	destAddr := parseNumber(recipient)
	toa, body, nibbleCount, err := address.Encode(destAddr)
	if err != nil {
		return "", 0, fmt.Errorf("encode destination address: %w", err)
	}
	buf = append(buf, byte(nibbleCount), toa)
	buf = append(buf, body...)

	buf = append(buf, protocolID)

	if gsm7Representable(runes) {
		udLength, udBody, err := encodeGSM7UD(runes)
		if err != nil {
			return "", 0, err
		}
		buf = append(buf, dcsGSM7, udLength)
		buf = append(buf, udBody...)
	} else {
		udLength, udBody, err := encodeUCS2UD(runes)
		if err != nil {
			return "", 0, err
		}
		buf = append(buf, dcsUCS2, udLength)
		buf = append(buf, udBody...)
	}

	return hexOf(buf), len(buf) - beginning, nil
}

// encodeSCA renders the service-center address prefix. An empty sca
// produces the single-byte "no SCA present" form.
func encodeSCA(sca string) ([]byte, error) {
	if sca == "" {
		return []byte{0x00}, nil
	}
	addr := parseNumber(sca)
	toa, body, _, err := address.Encode(addr)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 2+len(body))
	out = append(out, byte(1+len(body)), toa)
	out = append(out, body...)
	return out, nil
}
