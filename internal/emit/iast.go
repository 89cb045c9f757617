// Package emit renders a decoded stream.Event sequence back to
// human-readable text — IAST or Devanāgarī. Decoding (internal/stream)
// stops at the phoneme/control-byte level; emit is the thin, purely
// presentational layer on top, the same separation the teacher keeps
// between protocol framing and the CLI's human-facing output.
package emit

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/stream"
)

// accentGlyph renders the A field as the combining accent mark the IAST
// tokenizer recognizes; neutral accent renders as nothing.
var accentGlyph = map[byte]string{
	phoneme.AccentUdatta:   "́",
	phoneme.AccentAnudatta: "̀",
	phoneme.AccentSvarita:  "̂",
}

// nasalGlyph is the combining tilde the tokenizer recognizes as the
// anunāsika convention (spec.md TBD-4, see internal/iast).
const nasalGlyph = "̃"

// IAST renders a decoded event stream back to normalized IAST text.
// EventSankhyaSpan is skipped in favor of EventNumSpan's digit-glyph
// rendering: the two spans encode the same number in two parallel
// layers, and text output only needs the one written in visual order.
func IAST(events []stream.Event) (string, error) {
	var b strings.Builder
	pendingAnu := false

	for _, ev := range events {
		switch ev.Kind {
		case stream.EventPhoneme:
			tok, isSvara, err := phonemeIAST(ev.Phoneme)
			if err != nil {
				return "", err
			}
			b.WriteString(tok)
			if pendingAnu {
				if !isSvara {
					return "", slbcerr.Invariant("ANU control byte not followed by a svara")
				}
				b.WriteString(nasalGlyph)
			}
			pendingAnu = false

		case stream.EventAnu:
			pendingAnu = true

		case stream.EventSpace:
			b.WriteString(" ")

		case stream.EventDanda:
			b.WriteString("|")

		case stream.EventDoubleDanda:
			b.WriteString("||")

		case stream.EventAvagraha:
			b.WriteString("'")

		case stream.EventNumSpan:
			for _, g := range ev.Glyphs {
				b.WriteByte('0' + byte(g))
			}

		case stream.EventSankhyaSpan,
			stream.EventPadaStart, stream.EventPadaEnd,
			stream.EventPhonStart, stream.EventPhonEnd,
			stream.EventMetaEnvelope:
			// no text contribution

		default:
			return "", slbcerr.Invariant("unhandled event kind in IAST emitter")
		}
	}
	// accentGlyph/nasalGlyph always write a combining mark trailing the
	// base vowel, the same decomposed shape internal/iast.Tokenize
	// expects on the way in; NFC-composing here is what makes the result
	// compare equal, codepoint for codepoint, to internal/iast.Normalize's
	// NFC'd form (spec.md §8 invariant 1).
	return norm.NFC.String(b.String()), nil
}

// phonemeIAST renders a single phoneme byte to its IAST token, reporting
// whether it was a svara (accent already applied).
func phonemeIAST(by byte) (string, bool, error) {
	if phoneme.IsSvara(by) {
		tok, ok := phoneme.SvaraIAST(by)
		if !ok {
			return "", false, slbcerr.Invariant("unrecognized svara byte in event stream")
		}
		if a := phoneme.AccentOf(by); a != phoneme.AccentNeutral {
			tok += accentGlyph[a]
		}
		return tok, true, nil
	}
	tok, ok := phoneme.VyanjanaIAST(by)
	if !ok {
		return "", false, slbcerr.Invariant("unrecognized vyañjana byte in event stream")
	}
	return tok, false, nil
}
