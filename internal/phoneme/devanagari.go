package phoneme

// Devanāgarī emission is a pure lookup + virāma-insertion pass over the
// same byte tables used for IAST: each vyañjana byte maps to its bare
// consonant glyph (which implies an inherent "a" unless followed by a
// mātrā or virāma), and each svara byte maps to a mātrā glyph, or to a
// full independent vowel glyph when the svara opens a pada (word-initial
// position has no preceding consonant to attach a mātrā to).

var vyanjanaGlyph = map[string]string{
	"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "ṅ": "ङ",
	"c": "च", "ch": "छ", "j": "ज", "jh": "झ", "ñ": "ञ",
	"ṭ": "ट", "ṭh": "ठ", "ḍ": "ड", "ḍh": "ढ", "ṇ": "ण",
	"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
	"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
	"s": "स", "ś": "श", "ṣ": "ष", "h": "ह", "ḻ": "ळ",
	"y": "य", "v": "व", "r": "र", "l": "ल",
	"ẖ": "ᳵ", "ḥ": "ः", "ṃ": "ं",
}

// virāma is the subscript stroke that cancels a consonant's inherent
// vowel, used whenever a vyañjana is followed directly by another
// vyañjana (a cluster) or ends a pada with no following vowel.
const virama = "्"

// independentVowelGlyph is used when a svara opens a pada (no preceding
// consonant to carry a mātrā).
var independentVowelGlyph = map[string]string{
	"a": "अ", "ā": "आ", "i": "इ", "ī": "ई", "u": "उ", "ū": "ऊ",
	"ṛ": "ऋ", "ṝ": "ॠ", "ḷ": "ऌ", "ḹ": "ॡ",
	"e": "ए", "ai": "ऐ", "o": "ओ", "au": "औ",
}

// matraGlyph is used when a svara follows a consonant; "a" has no mātra
// (it is the consonant's inherent vowel, so emitting the bare consonant
// glyph alone is correct).
var matraGlyph = map[string]string{
	"a": "", "ā": "ा", "i": "ि", "ī": "ी", "u": "ु", "ū": "ू",
	"ṛ": "ृ", "ṝ": "ॄ", "ḷ": "ॢ", "ḹ": "ॣ",
	"e": "े", "ai": "ै", "o": "ो", "au": "ौ",
}

// DevanagariVyanjanaGlyph returns the bare consonant glyph for a
// vyañjana byte.
func DevanagariVyanjanaGlyph(b byte) (string, bool) {
	tok, ok := VyanjanaIAST(b)
	if !ok {
		return "", false
	}
	g, ok := vyanjanaGlyph[tok]
	return g, ok
}

// DevanagariSvaraGlyph returns the glyph for a svara byte: an
// independent vowel glyph if wordInitial, otherwise a mātrā (possibly
// empty, for inherent "a").
func DevanagariSvaraGlyph(b byte, wordInitial bool) (string, bool) {
	tok, ok := SvaraIAST(b)
	if !ok {
		return "", false
	}
	if wordInitial {
		g, ok := independentVowelGlyph[tok]
		return g, ok
	}
	g, ok := matraGlyph[tok]
	return g, ok
}

// Virama is the subscript vowel-cancellation glyph.
func Virama() string { return virama }

// candrabindu marks a nasalized vowel in Devanāgarī — this
// implementation's script-specific counterpart to the IAST combining
// tilde convention for the ANU-before-svara ordering (spec.md TBD-4).
const candrabindu = "ँ"

// Candrabindu is the nasalization glyph.
func Candrabindu() string { return candrabindu }

// Devanāgarī punctuation for the lipi control bytes.
const (
	DandaGlyph       = "।"
	DoubleDandaGlyph = "॥"
	AvagrahaGlyph    = "ऽ"
)

var devanagariDigit = [10]string{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"}

// DevanagariDigit returns the Devanāgarī digit glyph for d (0-9).
func DevanagariDigit(d int) (string, bool) {
	if d < 0 || d > 9 {
		return "", false
	}
	return devanagariDigit[d], true
}
