package gsm7

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackKnownVector(t *testing.T) {
	// "hellohello" in the default alphabet, packed, is the textbook
	// 7-bit packing example quoted by most TS 23.038 implementations.
	septets := []byte{}
	for _, r := range "hellohello" {
		sym, ok := Encode(r)
		assert.True(t, ok)
		septets = append(septets, sym.Value)
	}

	packed := Pack(septets)
	assert.Equal(t, []byte{0xE8, 0x32, 0x9B, 0xFD, 0x46, 0x97, 0xD9, 0xEC, 0x37}, packed)
	unpacked := Unpack(packed, 0, len(septets))

	assert.Equal(t, septets, unpacked)
}

func TestPackUnpackRoundtrip(t *testing.T) {
	for n := 0; n <= 160; n++ {
		septets := make([]byte, n)
		for i := range septets {
			septets[i] = byte(i % 128)
		}
		packed := Pack(septets)
		unpacked := Unpack(packed, 0, n)
		assert.Equal(t, septets, unpacked, "n=%d", n)
	}
}

func TestUnpackWithOffset(t *testing.T) {
	septets := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	packed := Pack(septets)

	tail := Unpack(packed, 3, len(septets)-3)

	assert.Equal(t, septets[3:], tail)
}

func TestPackEmpty(t *testing.T) {
	assert.Nil(t, Pack(nil))
}
