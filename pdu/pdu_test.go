package pdu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePDU_GSM7WithEscape(t *testing.T) {
	hexPDU, tpduLength, err := EncodePDU("+79521402032", "+79523702216", "Hello€")

	assert.NoError(t, err)
	assert.Equal(t, "07919725412030F201000B919725732012F6000007C8329BFDDE9401", hexPDU)
	assert.Equal(t, 20, tpduLength)
}

func TestEncodePDU_ChoosesUCS2ForOutOfAlphabetText(t *testing.T) {
	hexPDU, _, err := EncodePDU("", "+79527777777", "hello😀")
	assert.NoError(t, err)
	assert.Equal(t, "08", hexPDU[24:26], "DCS byte") // after SCA, type, MR, 8-octet address, PID

	msg, err := DecodePDU(hexPDU)
	assert.NoError(t, err)
	assert.Equal(t, "hello😀", msg.Text)
}

func TestEncodePDU_PlainASCIIStaysGSM7(t *testing.T) {
	hexPDU, tpduLength, err := EncodePDU("", "+79527777777", "hello")
	assert.NoError(t, err)

	// SCA absent -> a single length byte 0x00 precedes the TPDU.
	assert.Equal(t, 2*(1+tpduLength), len(hexPDU))
	assert.Equal(t, "00", hexPDU[24:26], "DCS byte") // after SCA, type, MR, 8-octet address, PID

	msg, err := DecodePDU(hexPDU)
	assert.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
}

func TestDecodePDU_RoundtripsEncodedGSM7Message(t *testing.T) {
	hexPDU, _, err := EncodePDU("+79521402032", "+79523702216", "Hello€")
	assert.NoError(t, err)

	msg, err := DecodePDU(hexPDU)
	assert.NoError(t, err)
	assert.Equal(t, "+79521402032", msg.SCA)
	assert.Equal(t, "+79523702216", msg.Sender)
	assert.Equal(t, "Hello€", msg.Text)
	assert.False(t, msg.Concat.Present)
}

func TestDecodePDU_RoundtripsEncodedUCS2Message(t *testing.T) {
	text := "hello0¥א♠🂡😀"
	hexPDU, _, err := EncodePDU("+79521402032", "+79527777777", text)
	assert.NoError(t, err)

	msg, err := DecodePDU(hexPDU)
	assert.NoError(t, err)
	assert.Equal(t, text, msg.Text)
	assert.Equal(t, "+79527777777", msg.Sender)
}

func TestDecodePDU_UDHIConcatenatedGSM7(t *testing.T) {
	// Hand-built SMS-DELIVER: no SCA, UDHI set, sender +79521402032,
	// GSM-7 DCS, a 6-octet 8-bit-reference concatenation UDH (ref=5,
	// total=2, part=1) ahead of the two-septet text "Hi". The UD length
	// byte (0x09) declares 9 septets total: udh.SeptetFill(6) == 7 fill
	// septets plus the 2 text septets, exercising REDESIGN FLAGS R4's
	// ceil-based subtraction rather than a raw octet-count one. "Hi"
	// starts on the septet boundary after the UDH, one fill bit in.
	hexPDU := "00440B919725412030F2000012806011223300090500030502019069"

	msg, err := DecodePDU(hexPDU)

	assert.NoError(t, err)
	assert.Equal(t, "+79521402032", msg.Sender)
	assert.Equal(t, "Hi", msg.Text)
	assert.True(t, msg.Concat.Present)
	assert.Equal(t, uint16(5), msg.Concat.Reference)
	assert.Equal(t, byte(2), msg.Concat.Total)
	assert.Equal(t, byte(1), msg.Concat.Part)
}

func TestDecodePDU_MalformedHex(t *testing.T) {
	_, err := DecodePDU("not-hex")

	assert.Error(t, err)
}

func TestDecodePDU_TruncatedPDU(t *testing.T) {
	_, err := DecodePDU("07")

	assert.Error(t, err)
}

func TestEncodePDU_OversizeGSM7(t *testing.T) {
	_, _, err := EncodePDU("", "+79527777777", strings.Repeat("a", MaxSeptets+1))

	assert.Error(t, err)
}

func TestEncodePDU_OversizeUCS2(t *testing.T) {
	_, _, err := EncodePDU("", "+79527777777", strings.Repeat("♠", MaxUCS2Units+1))

	assert.Error(t, err)
}

func TestFormatSendCommand(t *testing.T) {
	cmd := FormatSendCommand("0011", 5)

	assert.Equal(t, "AT+CMGS=5\r0011\x1a", cmd)
}

func TestFormatSCACommand(t *testing.T) {
	assert.Equal(t, `AT+CSCA="+79521402032"`, FormatSCACommand("+79521402032"))
	assert.Equal(t, "AT+CSCA?", FormatSCACommand(""))
}
