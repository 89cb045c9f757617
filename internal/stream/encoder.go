package stream

import (
	"github.com/abhyagra/slbc/internal/iast"
	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// Encode turns a tokenized IAST string into the interleaved bhāṣā+lipi
// byte stream of spec.md §4.5.
//
// PADA_START/PADA_END only earn their keep when they disambiguate an
// actual boundary between two or more padas (spec.md §8 scenarios 1 and
// 2: a lone implicit pada — "ka", "kṛṣṇa" — is emitted bare). Wrapping
// is the SAṄKHYĀ digit-pada convention (scenario 5, always wrapped,
// since a span of digit-padas is never a lone pada) generalized to
// running text: once a second pada boundary appears anywhere in the
// token sequence, every regular pada gets wrapped so the decoder can
// tell where each one ends.
func Encode(toks []iast.Token) []byte {
	wrap := countPadas(toks) > 1

	var out []byte
	var pada []byte

	flush := func() {
		if len(pada) == 0 {
			return
		}
		if wrap {
			out = append(out, PadaStart)
		}
		out = append(out, pada...)
		if wrap {
			out = append(out, PadaEnd)
		}
		pada = pada[:0]
	}

	for _, t := range toks {
		switch t.Kind {
		case iast.KindSvara:
			if t.Nasalized {
				pada = append(pada, Anu)
			}
			pada = append(pada, t.Phoneme)
		case iast.KindVyanjana:
			pada = append(pada, t.Phoneme)
		case iast.KindSpace:
			flush()
			out = append(out, Space)
		case iast.KindDanda:
			flush()
			out = append(out, Danda)
		case iast.KindDoubleDanda:
			flush()
			out = append(out, DoubleDanda)
		case iast.KindAvagraha:
			flush()
			out = append(out, Avagraha)
		case iast.KindNumber:
			flush()
			out = append(out, encodeNumber(t.Digits)...)
		}
	}
	flush()
	return out
}

// countPadas counts how many regular (non-digit) padas toks will
// produce, i.e. how many times a run of svara/vyañjana phonemes is
// terminated by a boundary token (space, daṇḍa, double daṇḍa, avagraha,
// or a number span opening). A Number token itself contributes no
// regular pada — its digit-padas are framed by encodeNumber
// unconditionally, independent of this count.
func countPadas(toks []iast.Token) int {
	count := 0
	inPada := false
	for _, t := range toks {
		switch t.Kind {
		case iast.KindSvara, iast.KindVyanjana:
			inPada = true
		case iast.KindSpace, iast.KindDanda, iast.KindDoubleDanda, iast.KindAvagraha, iast.KindNumber:
			if inPada {
				count++
			}
			inPada = false
		}
	}
	if inPada {
		count++
	}
	return count
}

// encodeNumber emits the SAṄKHYĀ (bhāṣā) + NUM (lipi) dual-layer span
// for a decimal digit run, per spec.md §4.5 point 4.
func encodeNumber(digits string) []byte {
	var out []byte
	out = append(out, SankhyaStart)
	out = uleb128.Append(out, uint32(len(digits)))

	// SAṄKHYĀ padas are emitted right-to-left, units first.
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		out = append(out, PadaStart)
		out = append(out, phoneme.DigitWords[d]...)
		out = append(out, PadaEnd)
	}

	// NUM glyph span is emitted left-to-right, as written.
	out = append(out, Num)
	for i := 0; i < len(digits); i++ {
		out = append(out, digits[i]-'0')
	}
	return out
}
