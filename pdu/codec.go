package pdu

// Encoder is a thin, stateful wrapper around EncodePDU, matching the
// original source's setSCAnumber/encodePDU object shape (REDESIGN FLAGS
// R6: the object only holds the configured SCA; the PDU itself is a
// returned value, not a field the caller mutates in place).
type Encoder struct {
	sca string
}

// SetSCANumber configures the service-center address used by subsequent
// EncodePDU calls. An empty number means "use the modem's default".
func (e *Encoder) SetSCANumber(number string) {
	e.sca = number
}

// SCANumber returns the currently configured service-center address.
func (e *Encoder) SCANumber() string {
	return e.sca
}

// EncodePDU assembles an SMS-SUBMIT TPDU for message addressed to
// recipient, using the Encoder's configured SCA. It returns the hex PDU
// and the TPDU length for AT+CMGS=<tpduLength>.
func (e *Encoder) EncodePDU(recipient, message string) (hexPDU string, tpduLength int, err error) {
	return EncodePDU(e.sca, recipient, message)
}

// Decoder is a thin, stateful wrapper around DecodePDU: it remembers the
// fields of the most recently successfully decoded PDU. A failed decode
// leaves those fields untouched, matching §7's "decode is all-or-nothing"
// propagation policy.
type Decoder struct {
	last Message
}

// DecodePDU parses hexPDU and, on success, updates the accessors below.
// It reports false on any failure and leaves the previous fields intact.
func (d *Decoder) DecodePDU(hexPDU string) bool {
	msg, err := DecodePDU(hexPDU)
	if err != nil {
		return false
	}
	d.last = msg
	return true
}

// SCANumber returns the service-center address of the most recently
// successfully decoded PDU.
func (d *Decoder) SCANumber() string { return d.last.SCA }

// Sender returns the originator address of the most recently
// successfully decoded PDU.
func (d *Decoder) Sender() string { return d.last.Sender }

// Timestamp returns the 14-digit service-center timestamp of the most
// recently successfully decoded PDU.
func (d *Decoder) Timestamp() string { return d.last.Timestamp }

// Text returns the decoded message text of the most recently
// successfully decoded PDU.
func (d *Decoder) Text() string { return d.last.Text }

// UDH returns the concatenation descriptor of the most recently
// successfully decoded PDU, and whether one was present at all.
func (d *Decoder) UDH() (ConcatInfo, bool) {
	return d.last.Concat, d.last.Concat.Present
}
