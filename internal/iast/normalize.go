package iast

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFC plus canonical whitespace collapsing, the form
// spec.md §8 invariant 1 requires a round-tripped decode to match
// against. Composed IAST diacritics (e.g. "a" + combining macron vs. the
// precomposed "ā") are folded to a single representation, and any run of
// whitespace is canonicalized to a single space — the same granularity
// the tokenizer's Space token already carries, so normalize() and
// decode_to_iast(encode(s)) agree (the IAST emitter NFC-composes its
// output too, see internal/emit).
//
// Normalize's NFC form is for comparison, not for feeding to Tokenize:
// Tokenize decomposes (NFD) its input internally regardless of what
// form the caller passes it in, because trailing accent/nasal marks
// are only reliably visible as separate combining-mark runes in
// decomposed text. Calling Normalize before Tokenize is harmless — it
// just gets decomposed again — never required.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	return collapseSpace(s)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
