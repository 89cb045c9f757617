package phoneme

// Varga manner/voicing/aspiration columns.
const (
	ColUnvoicedUnaspirated = iota
	ColUnvoicedAspirated
	ColVoicedUnaspirated
	ColVoicedAspirated
	ColNasal
)

// Varga places of articulation.
const (
	PlaceVelar = iota
	PlacePalatal
	PlaceRetroflex
	PlaceDental
	PlaceLabial
)

func vyanjanaByte(place, col byte) byte {
	return place<<placeShift | col<<columnShift
}

// vargaRow is the IAST stem for one place across the five columns, in
// column order (unaspirated, aspirated, voiced, voiced-aspirated, nasal).
var vargaRows = [5][5]string{
	PlaceVelar:     {"k", "kh", "g", "gh", "ṅ"},
	PlacePalatal:   {"c", "ch", "j", "jh", "ñ"},
	PlaceRetroflex: {"ṭ", "ṭh", "ḍ", "ḍh", "ṇ"},
	PlaceDental:    {"t", "th", "d", "dh", "n"},
	PlaceLabial:    {"p", "ph", "b", "bh", "m"},
}

// Non-varga consonants occupy PLACE 5-7, COLUMN 0-4 (ordinal index, no
// manner/voicing meaning). 12 of the 15 available slots are populated;
// the rest are reserved for future extension.
const (
	PlaceSibilant  = 5
	PlaceSemivowel = 6
	PlaceVedic     = 7
)

var nonVargaEntries = []struct {
	place, col byte
	iast       string
}{
	{PlaceSibilant, 0, "s"},
	{PlaceSibilant, 1, "ś"},
	{PlaceSibilant, 2, "ṣ"},
	{PlaceSibilant, 3, "h"},
	{PlaceSemivowel, 0, "ḻ"}, // Vedic retroflex lateral
	{PlaceSemivowel, 1, "y"},
	{PlaceSemivowel, 2, "v"},
	{PlaceSemivowel, 3, "r"},
	{PlaceSemivowel, 4, "l"},
	{PlaceVedic, 0, "ẖ"}, // jihvāmūlīya
	{PlaceVedic, 1, "ḥ"}, // visarga
	{PlaceVedic, 2, "ṃ"}, // anusvāra
}

var vyanjanaByIAST, vyanjanaIASTByByte = buildVyanjanaTables()

func buildVyanjanaTables() (map[string]byte, map[byte]string) {
	byIAST := map[string]byte{}
	byByte := map[byte]string{}
	for place, row := range vargaRows {
		for col, tok := range row {
			b := vyanjanaByte(byte(place), byte(col))
			byIAST[tok] = b
			byByte[b] = tok
		}
	}
	for _, e := range nonVargaEntries {
		b := vyanjanaByte(e.place, e.col)
		byIAST[e.iast] = b
		byByte[b] = e.iast
	}
	return byIAST, byByte
}

// VyanjanaByte looks up the byte for an IAST consonant token.
func VyanjanaByte(iast string) (byte, bool) {
	b, ok := vyanjanaByIAST[iast]
	return b, ok
}

// VyanjanaIAST returns the IAST token for a vyañjana byte.
func VyanjanaIAST(b byte) (string, bool) {
	tok, ok := vyanjanaIASTByByte[b]
	return tok, ok
}

// VyanjanaTokens lists all consonant IAST tokens, for the longest-match
// tokenizer. Digraphs (kh, ch, ṭh, th, ph, ...) are included alongside
// their single-letter prefixes (k, c, ṭ, t, p, ...) so the caller can
// sort by length and match longest-first.
func VyanjanaTokens() []string {
	toks := make([]string, 0, len(vyanjanaByIAST))
	for tok := range vyanjanaByIAST {
		toks = append(toks, tok)
	}
	return toks
}

// AnusvaraByte and VisargaByte name the vyañjana bytes of ṃ and ḥ, which
// IAST renders as dedicated single characters. They are exported for
// callers; no package in this module references them.
var (
	AnusvaraByte, _  = VyanjanaByte("ṃ")
	VisargaByte, _   = VyanjanaByte("ḥ")
)
