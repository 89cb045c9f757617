package iast

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/slbcerr"
)

// accentMarks maps a combining accent codepoint, written immediately
// after a vowel, to the A field value it sets. This is the tokenizer's
// concrete rendering of the Vedic accentuation convention: acute for
// udātta, grave for anudātta, circumflex for svarita.
var accentMarks = map[rune]byte{
	'́': phoneme.AccentUdatta,
	'̀': phoneme.AccentAnudatta,
	'̂': phoneme.AccentSvarita,
}

// combiningTilde marks a nasalized vowel (anunāsika), U+0303.
const combiningTilde = '̃'

// phonemeEntry's tok is the precomposed IAST spelling used to look the
// phoneme up in the phoneme package's tables; decomposed is the same
// token run through NFD, used to match against the NFD'd input so a
// macron/dot-below/etc. precomposed letter (ā, ṭ, ñ, ...) and an accent
// or nasal mark trailing it never collide into a single undetected
// Unicode codepoint — see matchPhoneme.
type phonemeEntry struct {
	tok        string
	decomposed string
	isSvara    bool
}

var phonemeAlphabet []phonemeEntry

func init() {
	for _, t := range phoneme.SvaraTokens() {
		phonemeAlphabet = append(phonemeAlphabet, phonemeEntry{t, norm.NFD.String(t), true})
	}
	for _, t := range phoneme.VyanjanaTokens() {
		phonemeAlphabet = append(phonemeAlphabet, phonemeEntry{t, norm.NFD.String(t), false})
	}
	// Longest-match: digraphs (kh, ch, ṭh, th, ph, ai, au, ...) must be
	// tried before their single-letter prefixes (k, c, ṭ, t, p, a, ...),
	// compared by decomposed length since that is the space matchPhoneme
	// actually searches.
	sort.Slice(phonemeAlphabet, func(i, j int) bool {
		return len(phonemeAlphabet[i].decomposed) > len(phonemeAlphabet[j].decomposed)
	})
}

// Tokenize lexes a normalized IAST string into a token sequence. Pada
// boundaries are not tokens in their own right — they are inferred by
// the encoder from KindSpace tokens, per spec.md §4.4's "whitespace and
// explicit pada markers" rule.
//
// The input is decomposed (NFD) before lexing, independently of
// whatever form the caller passed in (see internal/iast/normalize.go,
// which instead NFC-composes for the invariant-1 comparison form).
// Composed input matters here because an accent (U+0301/0300/0302) or
// nasalization (U+0303) mark written immediately after a vowel is only
// ever a *trailing combining mark* in this lexer's model — but Unicode
// NFC happily folds a base vowel plus that trailing mark into a single
// precomposed codepoint (e.g. "a"+U+0301 -> "á"), which would never
// match the phoneme tables' token strings or accentMarks/combiningTilde
// at all. Decomposing first guarantees every accent/nasal mark the
// input carries surfaces as a separate rune matchPhoneme's caller can
// see, regardless of which normal form the caller supplied.
func Tokenize(s string) ([]Token, error) {
	s = norm.NFD.String(s)
	var toks []Token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case unicode.IsSpace(r):
			j := i
			for j < len(s) {
				r2, sz2 := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += sz2
			}
			toks = append(toks, Token{Kind: KindSpace})
			i = j
			continue

		case strings.HasPrefix(s[i:], "||"):
			toks = append(toks, Token{Kind: KindDoubleDanda})
			i += 2
			continue

		case r == '|':
			toks = append(toks, Token{Kind: KindDanda})
			i += size
			continue

		case r == '\'':
			toks = append(toks, Token{Kind: KindAvagraha})
			i += size
			continue

		case r >= '0' && r <= '9':
			j := i
			for j < len(s) {
				r2, sz2 := utf8.DecodeRuneInString(s[j:])
				if r2 < '0' || r2 > '9' {
					break
				}
				j += sz2
			}
			toks = append(toks, Token{Kind: KindNumber, Digits: s[i:j]})
			i = j
			continue
		}

		if consumed, entry, ok := matchPhoneme(s[i:]); ok {
			tok := entry.tok
			var b byte
			if entry.isSvara {
				b, _ = phoneme.SvaraByte(tok)
				rest := s[i+consumed:]
				nasalized := false
				if ar, sz, found := matchAccent(rest); found {
					b = phoneme.WithAccent(b, accentMarks[ar])
					consumed += sz
					rest = s[i+consumed:]
				}
				if r2, sz2 := utf8.DecodeRuneInString(rest); r2 == combiningTilde {
					nasalized = true
					consumed += sz2
				}
				toks = append(toks, Token{Kind: KindSvara, Phoneme: b, Nasalized: nasalized})
			} else {
				b, _ = phoneme.VyanjanaByte(tok)
				toks = append(toks, Token{Kind: KindVyanjana, Phoneme: b})
			}
			i += consumed
			continue
		}

		return nil, slbcerr.InputEncoding(string(r), "unrecognized IAST token")
	}
	return toks, nil
}

// matchPhoneme finds the longest phonemeAlphabet entry whose decomposed
// form prefixes the (already NFD'd) rest of the input, returning how
// many bytes of rest that match consumed.
func matchPhoneme(rest string) (int, phonemeEntry, bool) {
	for _, e := range phonemeAlphabet {
		if strings.HasPrefix(rest, e.decomposed) {
			return len(e.decomposed), e, true
		}
	}
	return 0, phonemeEntry{}, false
}

func matchAccent(rest string) (rune, int, bool) {
	if rest == "" {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(rest)
	if _, ok := accentMarks[r]; ok {
		return r, size, true
	}
	return 0, 0, false
}
