package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeInternational(t *testing.T) {
	addr := Address{Digits: "79521402032", Type: International}

	toa, body, count, err := Encode(addr)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x91), toa)

	decoded, octetCount, err := Decode(toa, body, count)
	assert.NoError(t, err)
	assert.Equal(t, "+79521402032", decoded.Digits)
	assert.Equal(t, International, decoded.Type)
	assert.Equal(t, len(body), octetCount)
}

func TestEncodeDecodeNational(t *testing.T) {
	addr := Address{Digits: "89521402032", Type: National}

	toa, body, count, err := Encode(addr)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x81), toa)

	decoded, _, err := Decode(toa, body, count)
	assert.NoError(t, err)
	assert.Equal(t, "89521402032", decoded.Digits)
	assert.Equal(t, National, decoded.Type)
}

func TestEncodeDecodeAlphabetic(t *testing.T) {
	addr := Address{Digits: "Info", Type: Alphabetic}

	toa, body, count, err := Encode(addr)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xd0), toa)

	decoded, _, err := Decode(toa, body, count)
	assert.NoError(t, err)
	assert.Equal(t, "Info", decoded.Digits)
	assert.Equal(t, Alphabetic, decoded.Type)
}

func TestDecode_UnsupportedType(t *testing.T) {
	_, _, err := Decode(0x00, nil, 0)

	assert.Error(t, err)
}
