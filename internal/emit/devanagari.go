package emit

import (
	"strings"

	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/stream"
)

// Devanagari renders a decoded event stream to Devanāgarī script.
//
// A svara attaches as a mātrā to the immediately preceding vyañjana, or
// renders as an independent vowel glyph if no vyañjana precedes it
// since the last pada boundary. A vyañjana not immediately followed by
// a svara gets a virāma — whether because another vyañjana follows (a
// cluster) or the pada ends with it.
func Devanagari(events []stream.Event) (string, error) {
	var b strings.Builder
	pendingConsonant := false
	pendingAnu := false

	flushConsonant := func() {
		if pendingConsonant {
			b.WriteString(phoneme.Virama())
			pendingConsonant = false
		}
	}

	for _, ev := range events {
		switch ev.Kind {
		case stream.EventPadaStart:
			flushConsonant()

		case stream.EventPadaEnd:
			flushConsonant()

		case stream.EventPhoneme:
			if phoneme.IsSvara(ev.Phoneme) {
				g, ok := phoneme.DevanagariSvaraGlyph(ev.Phoneme, !pendingConsonant)
				if !ok {
					return "", slbcerr.Invariant("unrecognized svara byte in event stream")
				}
				b.WriteString(g)
				pendingConsonant = false
				if pendingAnu {
					b.WriteString(phoneme.Candrabindu())
					pendingAnu = false
				}
			} else {
				flushConsonant()
				g, ok := phoneme.DevanagariVyanjanaGlyph(ev.Phoneme)
				if !ok {
					return "", slbcerr.Invariant("unrecognized vyañjana byte in event stream")
				}
				b.WriteString(g)
				pendingConsonant = true
			}

		case stream.EventAnu:
			pendingAnu = true

		case stream.EventSpace:
			flushConsonant()
			b.WriteString(" ")

		case stream.EventDanda:
			flushConsonant()
			b.WriteString(phoneme.DandaGlyph)

		case stream.EventDoubleDanda:
			flushConsonant()
			b.WriteString(phoneme.DoubleDandaGlyph)

		case stream.EventAvagraha:
			flushConsonant()
			b.WriteString(phoneme.AvagrahaGlyph)

		case stream.EventNumSpan:
			flushConsonant()
			for _, dg := range ev.Glyphs {
				g, ok := phoneme.DevanagariDigit(dg)
				if !ok {
					return "", slbcerr.Invariant("digit glyph out of range in NumSpan event")
				}
				b.WriteString(g)
			}

		case stream.EventSankhyaSpan, stream.EventPhonStart, stream.EventPhonEnd,
			stream.EventMetaEnvelope:
			// no text contribution

		default:
			return "", slbcerr.Invariant("unhandled event kind in Devanāgarī emitter")
		}
	}
	flushConsonant()
	return b.String(), nil
}
