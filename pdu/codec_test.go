package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoder_UsesConfiguredSCA(t *testing.T) {
	var enc Encoder
	enc.SetSCANumber("+79521402032")
	assert.Equal(t, "+79521402032", enc.SCANumber())

	hexPDU, _, err := enc.EncodePDU("+79523702216", "Hello€")
	assert.NoError(t, err)

	want, _, err := EncodePDU("+79521402032", "+79523702216", "Hello€")
	assert.NoError(t, err)
	assert.Equal(t, want, hexPDU)
}

func TestDecoder_KeepsLastFieldsOnFailure(t *testing.T) {
	var dec Decoder

	hexPDU, _, err := EncodePDU("+79521402032", "+79523702216", "Hello€")
	assert.NoError(t, err)

	ok := dec.DecodePDU(hexPDU)
	assert.True(t, ok)
	assert.Equal(t, "Hello€", dec.Text())
	assert.Equal(t, "+79523702216", dec.Sender())

	ok = dec.DecodePDU("not-hex")
	assert.False(t, ok)
	assert.Equal(t, "Hello€", dec.Text(), "fields must survive a failed decode")

	_, present := dec.UDH()
	assert.False(t, present)
}
