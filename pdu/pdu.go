// Package pdu assembles and parses 3GPP TS 23.040 SMS-SUBMIT and
// SMS-DELIVER TPDUs: the binary payload exchanged with a GSM modem's
// AT+CMGS command, encoded as the uppercase hex string the AT interface
// expects.
//
// The assembler and parser are pure functions; the only mutable state in
// either direction is local to one call (the output buffer's write
// cursor on encode, the surrogate-bridging state on decode). Encoder and
// Decoder in this package are a thin, stateful convenience layer over
// those pure functions, kept for API parity with the original source's
// object-shaped interface (see SPEC_FULL.md §4.M); they share no state
// and are each safe for one-per-goroutine use without a mutex.
package pdu

import (
	"fmt"

	"github.com/ftl/gsm-pdu/address"
	"github.com/ftl/gsm-pdu/hexcodec"
)

// Protocol limits. These are compile-time constants, never read from an
// environment variable, flag, or file (see SPEC_FULL.md §6).
const (
	MaxSeptets    = 160 // 140 octets of packed GSM-7 user data
	MaxUCS2Units  = 70  // 140 octets / 2
	MaxUserOctets = 140
)

const (
	pduTypeSubmit   = 0x01 // SMS-SUBMIT, no validity period, UDHI clear
	pduTypeUDHIBit  = 0x40
	messageRef      = 0x00
	protocolID      = 0x00
	dcsGSM7         = 0x00
	dcsUCS2         = 0x08
	dcsAlphabetMask = 0x0c // bits 3:2 of the DCS byte
	dcs8Bit         = 0x04
)

// Message is the set of fields SMS-DELIVER decoding surfaces.
type Message struct {
	SCA       string
	Sender    string
	Timestamp string
	Concat    ConcatInfo
	Text      string
}

// ConcatInfo mirrors udh.Concat for callers that don't want to import the
// udh package directly; Present is false when the PDU carried no UDH.
type ConcatInfo struct {
	Present   bool
	Reference uint16
	Total     byte
	Part      byte
}

// parseNumber splits a caller-supplied phone number into digits and a
// type-of-number, stripping the leading '+' international prefix marker,
// which is never itself placed on the wire.
func parseNumber(number string) address.Address {
	if len(number) > 0 && number[0] == '+' {
		return address.Address{Digits: number[1:], Type: address.International}
	}
	return address.Address{Digits: number, Type: address.National}
}

// hexOf and binaryOf are small convenience wrappers so EncodePDU/DecodePDU
// don't each spell out the hexcodec call directly.
func hexOf(buf []byte) string { return hexcodec.ToHex(buf) }

func binaryOf(hex string) ([]byte, error) {
	buf, err := hexcodec.ToBinary(hex)
	if err != nil {
		return nil, fmt.Errorf("decode PDU: %w", err)
	}
	return buf, nil
}
