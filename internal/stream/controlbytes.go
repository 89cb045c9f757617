// Package stream implements the interleaved bhāṣā+lipi byte stream:
// the encoder (spec.md §4.5) and the stateful decoder (spec.md §4.6).
package stream

// Bhāṣā-layer control bytes (COLUMN=6). PLACE selects the control code;
// SANKHYA_START (PLACE=7), PADA_START (PLACE=4), PADA_END (PLACE=5) and
// the lipi control NUM (PLACE=5, see below) have byte values given
// directly by spec.md's worked example — the remaining PLACE assignments
// below are this implementation's own completion of the control-code
// space.
const (
	MetaStart    byte = 0x06 // PLACE=0 — coincides numerically with chunk type IDX (spec.md §9)
	MetaEnd      byte = 0x0E // PLACE=1
	PadaStart    byte = 0x26 // PLACE=4
	PadaEnd      byte = 0x2E // PLACE=5
	Anu          byte = 0x36 // PLACE=6
	SankhyaStart byte = 0x3E // PLACE=7 — given directly by spec.md §8 scenario 5
)

// Lipi-layer control bytes (COLUMN=7).
const (
	Space       byte = 0x07 // PLACE=0
	Danda       byte = 0x0F // PLACE=1
	DoubleDanda byte = 0x17 // PLACE=2
	Avagraha    byte = 0x1F // PLACE=3
	Num         byte = 0x2F // PLACE=5 — given directly by spec.md §8 scenario 5
)

// NumGlyphMax is the highest byte value a digit-glyph inside a NUM span
// may take (inclusive); the first byte >= 0x10 following NUM implicitly
// terminates the span.
const NumGlyphMax = 0x0F
