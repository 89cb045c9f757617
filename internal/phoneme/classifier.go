// Package phoneme implements the byte-space classification and the
// static IAST/Devanāgarī phoneme tables that the rest of the codec is
// built on.
//
// The classifier is pure, total functions on a byte — no state, no
// allocation — the same shape as the teacher's bit-twiddling helpers
// (ByteToBitsBE/BitsToByteBE in the ysf2dmr codec package): small,
// branch-free, heavily commented with the field layout rather than the
// "why".
package phoneme

// Byte field layout.
//
// Svara (bits[7:6] != 00): Q[2] A[2] S[2] G[2]
//   Q = quantity (bits 7-6): 01 hrasva, 10 dīrgha, 11 pluta
//   A = accent   (bits 5-4): 00 neutral, 01 udātta, 10 anudātta, 11 svarita
//   S = series   (bits 3-2): 00 A, 01 I, 10 U, 11 Ṛ
//   G = grade    (bits 1-0): 00 śuddha, 01 guṇa, 10 vṛddhi, 11 special
//
// Vyañjana / control (bits[7:6] == 00): 00 PLACE[3] COLUMN[3]
//   PLACE  (bits 5-3): 0-4 varga place of articulation, 5-7 non-varga /
//                      control-code selector
//   COLUMN (bits 2-0): 0-4 manner/voicing/aspiration (varga) or ordinal
//                      index (non-varga); 5 reserved; 6 bhāṣā control;
//                      7 lipi control
const (
	qShift = 6
	aShift = 4
	sShift = 2
	gShift = 0

	placeShift  = 3
	columnShift = 0

	field2Mask = 0x03
	field3Mask = 0x07
)

// QuantityOf extracts Q from a svara byte.
func QuantityOf(b byte) byte { return (b >> qShift) & field2Mask }

// AccentOf extracts A from a svara byte.
func AccentOf(b byte) byte { return (b >> aShift) & field2Mask }

// SeriesOf extracts S from a svara byte.
func SeriesOf(b byte) byte { return (b >> sShift) & field2Mask }

// GradeOf extracts G from a svara byte.
func GradeOf(b byte) byte { return (b >> gShift) & field2Mask }

// PlaceOf extracts PLACE from a vyañjana/control byte.
func PlaceOf(b byte) byte { return (b >> placeShift) & field3Mask }

// ColumnOf extracts COLUMN from a vyañjana/control byte.
func ColumnOf(b byte) byte { return (b >> columnShift) & field3Mask }

// Column values with a global meaning across the whole bits[7:6]==00
// byte space, independent of PLACE.
const (
	ColumnReserved       = 5
	ColumnBhashaControl  = 6
	ColumnLipiControl    = 7
)

// IsSvara reports whether b's top two bits select one of the three
// quantities, i.e. b is a vowel phoneme byte.
func IsSvara(b byte) bool { return (b >> qShift) != 0 }

// IsBhashaControl reports whether b is a bhāṣā-layer control byte
// (PADA_START/END, META_START/END, ANU, SANKHYA_START).
func IsBhashaControl(b byte) bool {
	return !IsSvara(b) && ColumnOf(b) == ColumnBhashaControl
}

// IsLipiControl reports whether b is a lipi-layer control byte
// (SPACE, DANDA, DOUBLE_DANDA, AVAGRAHA, NUM).
func IsLipiControl(b byte) bool {
	return !IsSvara(b) && ColumnOf(b) == ColumnLipiControl
}

// IsReserved reports whether b falls in the reserved column, valid for
// no current phoneme or control meaning.
func IsReserved(b byte) bool {
	return !IsSvara(b) && ColumnOf(b) == ColumnReserved
}

// IsVyanjana reports whether b is a consonant phoneme byte: bits[7:6]==00
// and COLUMN in the phoneme range 0-4. This intentionally excludes the
// reserved/bhāṣā-control/lipi-control columns even though the narrower
// algebraic shorthand for "varga" in the spec checks PLACE alone — see
// IsVarga for why the column exclusion is required to keep
// the five classifier predicates an exact partition of the byte space.
func IsVyanjana(b byte) bool {
	if IsSvara(b) {
		return false
	}
	c := ColumnOf(b)
	return c <= 4
}

// IsVarga reports whether b is a varga consonant: a vyañjana whose PLACE
// is 0-4 (velar/palatal/retroflex/dental/labial), so its COLUMN carries
// manner/voicing/aspiration meaning rather than an arbitrary ordinal
// index.
func IsVarga(b byte) bool {
	return IsVyanjana(b) && PlaceOf(b) <= 4
}

// Classify returns a short label for b, useful for `inspect`-style CLI
// output and for the decoder's internal sanity assertions.
func Classify(b byte) string {
	switch {
	case IsSvara(b):
		return "svara"
	case IsBhashaControl(b):
		return "bhasha-control"
	case IsLipiControl(b):
		return "lipi-control"
	case IsReserved(b):
		return "reserved"
	case IsVarga(b):
		return "varga"
	case IsVyanjana(b):
		return "non-varga"
	default:
		return "reserved"
	}
}
