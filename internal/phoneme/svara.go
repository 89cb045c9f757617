package phoneme

// Series values (S field).
const (
	SeriesA = iota
	SeriesI
	SeriesU
	SeriesVocalicR
)

// Grade values (G field).
const (
	GradeShuddha = iota
	GradeGuna
	GradeVrddhi
	GradeSpecial
)

// Quantity values (Q field).
const (
	QuantityHrasva = iota + 1
	QuantityDirgha
	QuantityPluta
)

// Accent values (A field). Neutral is the default written by any
// normalizer that strips accent marks — see spec.md §3 invariants.
const (
	AccentNeutral = iota
	AccentUdatta
	AccentAnudatta
	AccentSvarita
)

func svaraByte(q, a, s, g byte) byte {
	return q<<qShift | a<<aShift | s<<sShift | g<<gShift
}

// The 14 canonical vowel tokens (neutral accent), §4.2. Accent variants
// are derived mechanically by OR-ing in the A field — WithAccent below —
// rather than tabulated 14×4 times.
var svaraBaseByIAST = map[string]byte{
	"a":  svaraByte(QuantityHrasva, AccentNeutral, SeriesA, GradeShuddha),
	"ā":  svaraByte(QuantityDirgha, AccentNeutral, SeriesA, GradeShuddha),
	"i":  svaraByte(QuantityHrasva, AccentNeutral, SeriesI, GradeShuddha),
	"ī":  svaraByte(QuantityDirgha, AccentNeutral, SeriesI, GradeShuddha),
	"u":  svaraByte(QuantityHrasva, AccentNeutral, SeriesU, GradeShuddha),
	"ū":  svaraByte(QuantityDirgha, AccentNeutral, SeriesU, GradeShuddha),
	"ṛ":  svaraByte(QuantityHrasva, AccentNeutral, SeriesVocalicR, GradeShuddha),
	"ṝ":  svaraByte(QuantityDirgha, AccentNeutral, SeriesVocalicR, GradeShuddha),
	"ḷ":  svaraByte(QuantityHrasva, AccentNeutral, SeriesVocalicR, GradeSpecial),
	"ḹ":  svaraByte(QuantityDirgha, AccentNeutral, SeriesVocalicR, GradeSpecial),
	"e":  svaraByte(QuantityDirgha, AccentNeutral, SeriesI, GradeGuna),
	"ai": svaraByte(QuantityDirgha, AccentNeutral, SeriesI, GradeVrddhi),
	"o":  svaraByte(QuantityDirgha, AccentNeutral, SeriesU, GradeGuna),
	"au": svaraByte(QuantityDirgha, AccentNeutral, SeriesU, GradeVrddhi),
}

var svaraIASTByBase map[byte]string

func init() {
	svaraIASTByBase = make(map[byte]string, len(svaraBaseByIAST))
	for tok, b := range svaraBaseByIAST {
		svaraIASTByBase[b] = tok
	}
}

// SvaraByte looks up the neutral-accent byte for an IAST vowel token.
func SvaraByte(iast string) (byte, bool) {
	b, ok := svaraBaseByIAST[iast]
	return b, ok
}

// SvaraIAST returns the IAST token for a svara byte, accent stripped
// (accent is rendered separately by the caller — see WithAccent/AccentOf).
func SvaraIAST(b byte) (string, bool) {
	base := b &^ (field2Mask << aShift) // neutralize A before lookup
	tok, ok := svaraIASTByBase[base]
	return tok, ok
}

// WithAccent returns b with its A field set to accent.
func WithAccent(b byte, accent byte) byte {
	return (b &^ (field2Mask << aShift)) | (accent&field2Mask)<<aShift
}

// SvaraTokens lists all 14 canonical vowel tokens, in no particular
// order, for use by the longest-match tokenizer (which sorts them itself).
func SvaraTokens() []string {
	toks := make([]string, 0, len(svaraBaseByIAST))
	for tok := range svaraBaseByIAST {
		toks = append(toks, tok)
	}
	return toks
}
