// Package gsm7 implements the TS 23.038 GSM 7-bit default alphabet: the
// forward and reverse translation tables between Unicode code points and
// GSM-7 septet values, including the 10-entry escape extension table.
package gsm7

import (
	"golang.org/x/text/encoding/charmap"
)

// Escape is the septet value that introduces an extension-table character.
const Escape = 0x1b

// NPC7 is the sentinel septet value standing in for "no printable GSM-7
// character" when a code point has neither a direct nor an escaped mapping.
const NPC7 = 0x3f // '?'

// NPC8 is the sentinel rune used on decode when a septet or escape pair has
// no defined character (an escape not present in the extension table).
const NPC8 = '?'

// defaultAlphabet is indexed by septet value (0-127) and holds the rune it
// represents. Septet 27 (Escape) never appears as a terminal value; it is
// handled separately by the caller.
var defaultAlphabet = [128]rune{
	'@', '£', '$', '¥', 'è', 'é', 'ù', 'ì', 'ò', 'Ç', '\n', 'Ø', 'ø', '\r', 'Å', 'å',
	'Δ', '_', 'Φ', 'Γ', 'Λ', 'Ω', 'Π', 'Ψ', 'Σ', 'Θ', 'Ξ', Escape, 'Æ', 'æ', 'ß', 'É',
	' ', '!', '"', '#', '¤', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'¡', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'Ä', 'Ö', 'Ñ', 'Ü', '§',
	'¿', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', 'ä', 'ö', 'ñ', 'ü', 'à',
}

// extensionAlphabet maps an escaped septet value to the rune it represents.
// Reached on decode after seeing Escape; on encode, a hit here costs two
// septets (Escape plus this value) instead of one.
var extensionAlphabet = map[byte]rune{
	0x0a: '\f',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2f: '\\',
	0x3c: '[',
	0x3d: '~',
	0x3e: ']',
	0x40: '|',
	0x65: '€',
}

// closeMatch substitutes a handful of typographic code points (all but the
// non-breaking space outside Latin-1) that have no direct GSM-7 mapping
// with their nearest GSM-7 equivalent, following the
// original source's handling of typographic punctuation that a GSM
// terminal would otherwise render as NPC7.
var closeMatch = map[rune]rune{
	'‘': '\'', // left single quotation mark
	'’': '\'', // right single quotation mark
	'“': '"',  // left double quotation mark
	'”': '"',  // right double quotation mark
	'–': '-',  // en dash
	'—': '-',  // em dash
	' ': ' ',  // non-breaking space
}

// Symbol is a resolved GSM-7 encoding of one code point: either a single
// septet (Escaped == false) or an escape pair (Escaped == true, in which
// case Escape must be emitted before Value).
type Symbol struct {
	Value   byte
	Escaped bool
}

var runeToSymbol map[rune]Symbol

func init() {
	runeToSymbol = make(map[rune]Symbol, len(defaultAlphabet)+len(extensionAlphabet))
	for value, r := range defaultAlphabet {
		if byte(value) == Escape {
			continue
		}
		runeToSymbol[r] = Symbol{Value: byte(value)}
	}
	for value, r := range extensionAlphabet {
		runeToSymbol[r] = Symbol{Value: value, Escaped: true}
	}
}

// Encode returns the GSM-7 symbol for a code point, and whether it was
// representable at all. A close-match substitute is tried before giving up;
// failing that, any other code point in the ISO-8859-1 range still degrades
// to NPC7 rather than forcing UCS-2 — only code points outside that range
// have no GSM-7 representation at all.
func Encode(r rune) (Symbol, bool) {
	if sym, ok := runeToSymbol[r]; ok {
		return sym, true
	}
	if substitute, ok := closeMatch[r]; ok {
		return runeToSymbol[substitute], true
	}
	if InLatin1Range(r) {
		return Symbol{Value: NPC7}, true
	}
	return Symbol{}, false
}

// Representable reports whether r has a direct, escaped, close-match, or
// NPC7-degraded GSM-7 encoding. It is the classification step the PDU
// assembler uses to choose between the GSM-7 and UCS-2 data coding
// schemes, and it operates on decoded code points rather than raw bytes
// (see REDESIGN FLAGS R1).
func Representable(r rune) bool {
	_, ok := Encode(r)
	return ok
}

// Decode returns the rune for a plain (non-escaped) septet value.
func Decode(value byte) rune {
	if int(value) >= len(defaultAlphabet) {
		return NPC8
	}
	return defaultAlphabet[value]
}

// DecodeExtension returns the rune for an escaped septet value, or NPC8 if
// the extension table has no entry for it.
func DecodeExtension(value byte) rune {
	if r, ok := extensionAlphabet[value]; ok {
		return r
	}
	return NPC8
}

// latin1Encoder exercises the ISO-8859-1 boundary the data model describes
// ("ISO-8859-1 for the low 256 code points"): a code point is in range iff
// charmap.ISO8859_1 can represent it as a single byte.
var latin1Encoder = charmap.ISO8859_1.NewEncoder()

// InLatin1Range reports whether r has a single-byte ISO-8859-1 representation.
func InLatin1Range(r rune) bool {
	_, err := latin1Encoder.Bytes([]byte(string(r)))
	return err == nil
}
