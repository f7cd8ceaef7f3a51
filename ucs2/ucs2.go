package ucs2

const (
	highSurrogateStart = 0xd800
	highSurrogateEnd   = 0xdbff
	lowSurrogateStart  = 0xdc00
	lowSurrogateEnd    = 0xdfff
	supplementaryBase  = 0x10000
)

// NPC8 is emitted in place of a lone or mismatched surrogate. The decode
// call that produced it is not failed outright (the original source
// silently drops these); callers are expected to log it instead, see
// SurrogateState.Feed.
const NPC8 = '?'

func isHighSurrogate(unit uint16) bool {
	return unit >= highSurrogateStart && unit <= highSurrogateEnd
}

func isLowSurrogate(unit uint16) bool {
	return unit >= lowSurrogateStart && unit <= lowSurrogateEnd
}

// EncodeRune returns the one or two big-endian 16-bit units that represent
// r in UCS-2/UTF-16. Code points above the Basic Multilingual Plane are
// carried as a surrogate pair.
func EncodeRune(r rune) []uint16 {
	if r < supplementaryBase {
		return []uint16{uint16(r)}
	}
	v := uint32(r) - supplementaryBase
	high := uint16(highSurrogateStart | (v >> 10))
	low := uint16(lowSurrogateStart | (v & 0x3ff))
	return []uint16{high, low}
}

// SurrogateState holds a pending high surrogate across a sequence of
// Feed calls. It replaces the file-scope SPstart/spair globals the
// original decoder used; callers construct one per decode operation and
// never share it across PDUs (see REDESIGN FLAGS R3).
type SurrogateState struct {
	pending    uint16
	hasPending bool
}

// Reset clears any pending high surrogate. A fresh SurrogateState is
// already reset; Feed calls Reset when a pair completes or is abandoned,
// and a caller that reuses one value across PDUs can call it in between.
func (s *SurrogateState) Reset() {
	s.pending = 0
	s.hasPending = false
}

// Feed advances the surrogate state machine by one 16-bit code unit. It
// returns a rune and true when a full code point is ready to emit, or
// false if unit started a pending surrogate pair. lone reports an
// unpaired surrogate: either unit is a low surrogate with no pending high
// one, or a pending high surrogate is followed by a unit that is not a
// low surrogate (that unit is consumed with it). The returned rune is
// then NPC8.
func (s *SurrogateState) Feed(unit uint16) (r rune, ready bool, lone bool) {
	switch {
	case s.hasPending && isLowSurrogate(unit):
		v := (uint32(s.pending&0x3ff) << 10) | uint32(unit&0x3ff)
		s.Reset()
		return rune(v + supplementaryBase), true, false

	case s.hasPending:
		// a high surrogate was not followed by a low surrogate.
		s.Reset()
		return NPC8, true, true

	case isHighSurrogate(unit):
		s.pending = unit
		s.hasPending = true
		return 0, false, false

	case isLowSurrogate(unit):
		// a low surrogate with no preceding high surrogate.
		return NPC8, true, true

	default:
		return rune(unit), true, false
	}
}
