// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import "fmt"

// Segment bit assignments of a digit register in raw mode. Bit 7 is the
// decimal point, bits 6..0 are segments A through G.
const (
	// SegDP ORed into a raw pattern turns the decimal point on.
	SegDP byte = 0x80

	// unknownGlyph is the pattern displayed for bytes without a glyph: a
	// question-mark-like shape (segments A, B, G, E).
	unknownGlyph byte = 0x65

	// fieldWidth is the character width of a formatted numeric field, one
	// per digit register.
	fieldWidth = 8
)

// SegmentPattern translates a character into the raw segment pattern that
// draws it. Digits, a small set of letters with recognizable 7-segment
// shapes, space, dash, underscore and dot are mapped; anything else yields
// the fixed unknown pattern. dot turns the decimal point on.
func SegmentPattern(c byte, dot bool) byte {
	var p byte
	switch c {
	case ' ':
		p = 0x00
	case '-':
		p = 0x01
	case '_':
		p = 0x08
	case '.':
		p = SegDP
	case '0':
		p = 0x7e
	case '1':
		p = 0x30
	case '2':
		p = 0x6d
	case '3':
		p = 0x79
	case '4':
		p = 0x33
	case '5':
		p = 0x5b
	case '6':
		p = 0x5f
	case '7':
		p = 0x70
	case '8':
		p = 0x7f
	case '9':
		p = 0x7b
	case 'a', 'A':
		p = 0x77
	case 'b', 'B':
		p = 0x1f
	case 'c':
		p = 0x0d
	case 'C':
		p = 0x4e
	case 'd', 'D':
		p = 0x3d
	case 'e', 'E':
		p = 0x4f
	case 'f', 'F':
		p = 0x47
	case 'g', 'G':
		p = 0x5e
	case 'h':
		p = 0x17
	case 'H':
		p = 0x37
	case 'i', 'I':
		p = 0x30
	case 'j', 'J':
		p = 0x3c
	case 'l', 'L':
		p = 0x0e
	case 'n', 'N':
		p = 0x15
	case 'o':
		p = 0x1d
	case 'O':
		p = 0x7e
	case 'p', 'P':
		p = 0x67
	case 'q', 'Q':
		p = 0x73
	case 'r', 'R':
		p = 0x05
	case 's', 'S':
		p = 0x5b
	case 't', 'T':
		p = 0x0f
	case 'u':
		p = 0x1c
	case 'U':
		p = 0x3e
	case 'y', 'Y':
		p = 0x3b
	default:
		p = unknownGlyph
	}
	if dot {
		p |= SegDP
	}
	return p
}

// Code B values without a direct digit equivalent.
const (
	codeBDash  byte = 0x0a
	codeBBlank byte = 0x0f
	// codeBDot ORed into a Code B value turns the decimal point on.
	codeBDot byte = 0x80
)

// CodeB translates a character into the chip's Code B encoding: digits 0-9,
// dash and the letters E, H, L and P, where the uppercase form sets the
// decimal point bit. Anything else, including space, maps to the blank code.
func CodeB(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	switch c {
	case '-':
		return codeBDash
	case 'e':
		return 0x0b
	case 'E':
		return 0x0b | codeBDot
	case 'h':
		return 0x0c
	case 'H':
		return 0x0c | codeBDot
	case 'l':
		return 0x0d
	case 'L':
		return 0x0d | codeBDot
	case 'p':
		return 0x0e
	case 'P':
		return 0x0e | codeBDot
	default:
		return codeBBlank
	}
}

// decimalField renders value as a signed decimal, right justified in an
// 8-character space-padded field. Values too wide for the field, sign
// included, render as "Err".
func decimalField(value int) []byte {
	s := fmt.Sprintf("%d", value)
	if len(s) > fieldWidth {
		s = "Err"
	}
	return []byte(fmt.Sprintf("%*s", fieldWidth, s))
}

// hexField renders value as unsigned lowercase hexadecimal, right justified
// in an 8-character space-padded field, falling back to "Err" like
// decimalField.
func hexField(value uint64) []byte {
	s := fmt.Sprintf("%x", value)
	if len(s) > fieldWidth {
		s = "Err"
	}
	return []byte(fmt.Sprintf("%*s", fieldWidth, s))
}
