package stream

import (
	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/slbcerr"
	"github.com/abhyagra/slbc/internal/uleb128"
)

// decoderState is the decoder's current lane, per spec.md §4.6 and §9:
// the interpretation of a byte is a function of state, never of the raw
// byte value alone — a ULEB128 payload byte or a chunk-type byte can
// numerically coincide with a bhāṣā control byte, and only the state
// machine disambiguates them.
type decoderState int

const (
	stNormal decoderState = iota
	stInPada
	stInSankhyaSpan
	stInNumSpan
	stInMetaBlock
)

// Decode consumes an interleaved bhāṣā+lipi byte stream and yields the
// token-stream events it encodes (spec.md §4.6). It never mistakes a
// payload byte for a control byte because every decision below consults
// the current state before the byte's classification.
func Decode(data []byte) ([]Event, error) {
	var events []Event
	stack := []decoderState{stNormal}

	var sankhyaRemaining uint32
	var sankhyaDigits []int
	var numGlyphs []int
	var metaDepth int
	var metaBuf []byte

	top := func() decoderState { return stack[len(stack)-1] }
	push := func(s decoderState) { stack = append(stack, s) }
	pop := func() { stack = stack[:len(stack)-1] }

	i := 0
	for i < len(data) {
		b := data[i]

		switch top() {
		case stNormal, stInPada:
			switch {
			case phoneme.IsSvara(b) || phoneme.IsVyanjana(b):
				events = append(events, Event{Kind: EventPhoneme, Phoneme: b})
				i++

			case b == PadaStart:
				if top() == stInPada {
					return nil, slbcerr.Invariant("decoder: nested PADA_START, padas do not nest")
				}
				push(stInPada)
				events = append(events, Event{Kind: EventPadaStart})
				i++

			case b == PadaEnd:
				if top() != stInPada {
					return nil, slbcerr.Container(int64(i), "decoder: PADA_END with no open pada", nil)
				}
				pop()
				events = append(events, Event{Kind: EventPadaEnd})
				i++

			case b == MetaStart:
				push(stInMetaBlock)
				metaDepth = 1
				metaBuf = nil
				i++

			case b == Anu:
				events = append(events, Event{Kind: EventAnu})
				i++

			case b == SankhyaStart:
				count, n, err := uleb128.Read(data, int64(i+1))
				if err != nil {
					return nil, err
				}
				i += 1 + n
				push(stInSankhyaSpan)
				sankhyaRemaining = count
				sankhyaDigits = nil
				if count == 0 {
					events = append(events, Event{Kind: EventSankhyaSpan, Digits: nil})
					pop()
				}

			case b == Space:
				events = append(events, Event{Kind: EventSpace})
				i++
			case b == Danda:
				events = append(events, Event{Kind: EventDanda})
				i++
			case b == DoubleDanda:
				events = append(events, Event{Kind: EventDoubleDanda})
				i++
			case b == Avagraha:
				events = append(events, Event{Kind: EventAvagraha})
				i++

			case b == Num:
				push(stInNumSpan)
				numGlyphs = nil
				i++

			case phoneme.IsReserved(b):
				return nil, slbcerr.Container(int64(i), "decoder: reserved byte encountered", nil)

			default:
				return nil, slbcerr.Invariant("decoder: unreachable byte classification")
			}

		case stInSankhyaSpan:
			if b != PadaStart {
				return nil, slbcerr.Span(int64(i), "decoder: SAṄKHYĀ span expected PADA_START")
			}
			i++
			start := i
			for i < len(data) && data[i] != PadaEnd {
				if !(phoneme.IsSvara(data[i]) || phoneme.IsVyanjana(data[i])) {
					return nil, slbcerr.Span(int64(i), "decoder: non-phoneme byte inside digit pada")
				}
				i++
			}
			if i >= len(data) {
				return nil, slbcerr.Span(int64(start), "decoder: SAṄKHYĀ digit pada ran past stream end")
			}
			digit, ok := phoneme.DigitWordIndex(data[start:i])
			if !ok {
				return nil, slbcerr.Span(int64(start), "decoder: digit pada content not in closed digit-word vocabulary")
			}
			i++ // consume PADA_END
			sankhyaDigits = append(sankhyaDigits, digit)
			sankhyaRemaining--
			if sankhyaRemaining == 0 {
				events = append(events, Event{Kind: EventSankhyaSpan, Digits: reverseInts(sankhyaDigits)})
				pop()
			}

		case stInNumSpan:
			if b <= NumGlyphMax {
				numGlyphs = append(numGlyphs, int(b))
				i++
			} else {
				events = append(events, Event{Kind: EventNumSpan, Glyphs: numGlyphs})
				pop()
				// b is not consumed; it is reprocessed under the resumed state.
			}

		case stInMetaBlock:
			switch b {
			case MetaStart:
				metaDepth++
				metaBuf = append(metaBuf, b)
			case MetaEnd:
				metaDepth--
				if metaDepth == 0 {
					events = append(events, Event{Kind: EventMetaEnvelope, Meta: metaBuf})
					pop()
				} else {
					metaBuf = append(metaBuf, b)
				}
			default:
				metaBuf = append(metaBuf, b)
			}
			i++

		default:
			return nil, slbcerr.Invariant("decoder: unreachable state")
		}
	}

	if top() == stInNumSpan {
		events = append(events, Event{Kind: EventNumSpan, Glyphs: numGlyphs})
		pop()
	}
	if len(stack) != 1 {
		return nil, slbcerr.Span(int64(len(data)), "decoder: stream ended inside an open pada/span/meta-block")
	}
	return events, nil
}

func reverseInts(xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
