// Package algebra implements the Pāṇinian bit operations of spec.md §4.3:
// pure u8 -> u8 functions with stated preconditions. A violated
// precondition is a programmer error, not a decode-time failure — it
// panics via slbcerr.Domain rather than returning an error, the same way
// the teacher's bit-twiddling helpers (internal/codec in the teacher)
// were one-liners trusted to be called correctly by their caller rather
// than defensively re-validated at every call site.
package algebra

import (
	"github.com/abhyagra/slbc/internal/phoneme"
	"github.com/abhyagra/slbc/internal/slbcerr"
)

func requireSvara(s byte, op string) {
	if !phoneme.IsSvara(s) {
		slbcerr.Domain(op + ": precondition violated, byte is not a svara")
	}
}

func requireVarga(c byte, op string) {
	if !phoneme.IsVarga(c) {
		slbcerr.Domain(op + ": precondition violated, byte is not a varga vyañjana")
	}
}

func setField(b byte, shift, mask, value byte) byte {
	return (b &^ (mask << shift)) | (value&mask)<<shift
}

const field2Mask = 0x03
const field3Mask = 0x07
const qShift = 6
const sShift = 2
const gShift = 0
const colShift = 0

// Guna sets G=guṇa, Q=dīrgha. Accent is preserved.
func Guna(s byte) byte {
	requireSvara(s, "guna")
	b := setField(s, gShift, field2Mask, phoneme.GradeGuna)
	return setField(b, qShift, field2Mask, phoneme.QuantityDirgha)
}

// Vrddhi sets G=vṛddhi, Q=dīrgha. Accent is preserved.
func Vrddhi(s byte) byte {
	requireSvara(s, "vrddhi")
	b := setField(s, gShift, field2Mask, phoneme.GradeVrddhi)
	return setField(b, qShift, field2Mask, phoneme.QuantityDirgha)
}

// Dirgha sets Q=dīrgha, leaving series/grade/accent untouched.
func Dirgha(s byte) byte {
	requireSvara(s, "dirgha")
	return setField(s, qShift, field2Mask, phoneme.QuantityDirgha)
}

// Hrasva sets Q=hrasva, leaving series/grade/accent untouched.
func Hrasva(s byte) byte {
	requireSvara(s, "hrasva")
	return setField(s, qShift, field2Mask, phoneme.QuantityHrasva)
}

// SavarnaDirgha implements savarṇa-dīrgha sandhi: two svaras of the same
// series combine to the dīrgha grade of the first.
func SavarnaDirgha(a, b byte) byte {
	requireSvara(a, "savarna_dirgha")
	requireSvara(b, "savarna_dirgha")
	if phoneme.SeriesOf(a) != phoneme.SeriesOf(b) {
		slbcerr.Domain("savarna_dirgha: precondition violated, series differ")
	}
	return Dirgha(a)
}

// Jastva implements jaśtva: forces COLUMN to voiced-unaspirated (010),
// the word-final devoicing-to-voiced transformation. This is a literal
// field assignment, not an XOR — see spec.md invariant 5
// for why "c | 0b010" and "set COL=010" coincide only for the
// unaspirated-voiceless input the invariant demonstrates.
func Jastva(c byte) byte {
	requireVarga(c, "jastva")
	return setField(c, colShift, field3Mask, phoneme.ColVoicedUnaspirated)
}

// ToggleVoice flips the voicing bit (COLUMN bit 1). Involution:
// ToggleVoice(ToggleVoice(c)) == c.
func ToggleVoice(c byte) byte {
	requireVarga(c, "toggle_voice")
	return c ^ 0b010
}

// ToggleAspiration flips the aspiration bit (COLUMN bit 0). Involution:
// ToggleAspiration(ToggleAspiration(c)) == c.
func ToggleAspiration(c byte) byte {
	requireVarga(c, "toggle_aspiration")
	return c ^ 0b001
}

// MakeNasal forces COLUMN to the nasal column (100), place unchanged.
func MakeNasal(c byte) byte {
	requireVarga(c, "make_nasal")
	return setField(c, colShift, field3Mask, phoneme.ColNasal)
}

// HomorganicNasalFor returns the nasal consonant sharing c's place of
// articulation — the byte used for automatic nasal assimilation before a
// following nasal or voiced stop.
func HomorganicNasalFor(c byte) byte {
	requireVarga(c, "homorganic_nasal_for")
	return MakeNasal(c)
}

// samprasaranaTable is an explicit four-entry lookup, not a bit-copy: the
// la <-> ḷ correspondence breaks the series-to-column mapping that would
// otherwise let ya/va/ra derive their vowel by formula (see spec.md §4.3
// and §9 — "do not fix it").
var samprasaranaTable = map[byte]byte{}

func init() {
	pairs := []struct{ cons, vow string }{
		{"y", "i"}, {"v", "u"}, {"r", "ṛ"}, {"l", "ḷ"},
	}
	for _, p := range pairs {
		c, ok := phoneme.VyanjanaByte(p.cons)
		if !ok {
			panic("algebra: missing consonant " + p.cons)
		}
		v, ok := phoneme.SvaraByte(p.vow)
		if !ok {
			panic("algebra: missing vowel " + p.vow)
		}
		samprasaranaTable[c] = v
	}
}

// SamprasaranaToSvara converts a semivowel (ya/va/ra/la) to its
// saṃprasāraṇa vowel via the explicit lookup table.
func SamprasaranaToSvara(c byte) byte {
	v, ok := samprasaranaTable[c]
	if !ok {
		slbcerr.Domain("samprasarana_to_svara: precondition violated, byte is not ya/va/ra/la")
	}
	return v
}
