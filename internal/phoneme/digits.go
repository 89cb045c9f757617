package phoneme

// DigitWord is the closed, fixed byte-sequence for the pure prātipadika
// of one decimal digit (0-9), per spec.md §3/§6.3.2 of the source. Each
// sequence is built from the same vyañjana/svara byte tables as running
// text — there is nothing special about a digit-word byte, only its
// position inside a SAṄKHYĀ span (see internal/stream).
type DigitWord []byte

func mustBytes(tokens ...string) DigitWord {
	w := make(DigitWord, 0, len(tokens))
	for _, t := range tokens {
		if b, ok := SvaraByte(t); ok {
			w = append(w, b)
			continue
		}
		if b, ok := VyanjanaByte(t); ok {
			w = append(w, b)
			continue
		}
		panic("phoneme: unknown digit-word token " + t)
	}
	return w
}

// DigitWords holds the ten canonical digit words, index == digit value.
var DigitWords = [10]DigitWord{
	0: mustBytes("ś", "ū", "n", "y", "a"), // śūnya
	1: mustBytes("e", "k", "a"),           // eka
	2: mustBytes("d", "v", "i"),           // dvi
	3: mustBytes("t", "r", "i"),           // tri
	4: mustBytes("c", "a", "t", "u", "r"), // catur
	5: mustBytes("p", "a", "ñ", "c", "a"), // pañca
	6: mustBytes("ṣ", "a", "ṣ"),           // ṣaṣ
	7: mustBytes("s", "a", "p", "t", "a"), // sapta
	8: mustBytes("a", "ṣ", "ṭ", "a"),      // aṣṭa
	9: mustBytes("n", "a", "v", "a"),      // nava
}

// DigitWordIndex returns which digit 0-9 a candidate byte sequence spells,
// validated against exact byte-sequence equality — the closed vocabulary
// is a validation asset (spec.md §9), not a fuzzy phonetic match.
func DigitWordIndex(candidate []byte) (int, bool) {
	for d, w := range DigitWords {
		if len(w) != len(candidate) {
			continue
		}
		match := true
		for i := range w {
			if w[i] != candidate[i] {
				match = false
				break
			}
		}
		if match {
			return d, true
		}
	}
	return -1, false
}
