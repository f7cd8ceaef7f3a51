package timestamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundtrip(t *testing.T) {
	digits := "21216123732106" // from a corpus PDU's SCTS field

	encoded, err := Encode(digits)
	assert.NoError(t, err)
	assert.Len(t, encoded, Length)

	decoded, err := Decode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, digits, decoded)
}

func TestDecode_WrongLength(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02})

	assert.Error(t, err)
}

func TestEncode_WrongLength(t *testing.T) {
	_, err := Encode("1234")

	assert.Error(t, err)
}

func TestDecode_FoldsSignFlaggedNibble(t *testing.T) {
	// 0xA in a nibble is not valid BCD; it folds to '2'.
	decoded, err := Decode([]byte{0x12, 0x21, 0x61, 0x37, 0x32, 0x10, 0xA6})

	assert.NoError(t, err)
	assert.Equal(t, byte('2'), decoded[13])
}
