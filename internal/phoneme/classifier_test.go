package phoneme

import "testing"

func TestClassifyPartition(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		count := 0
		if IsSvara(b) {
			count++
		}
		if IsVyanjana(b) {
			count++
		}
		if IsBhashaControl(b) {
			count++
		}
		if IsLipiControl(b) {
			count++
		}
		if IsReserved(b) {
			count++
		}
		if count != 1 {
			t.Errorf("byte 0x%02X: expected exactly one classifier true, got %d", b, count)
		}
	}
}

func TestIsSvara(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{0x00, false}, // ka
		{0x40, true},  // a
		{0x85, true},  // e
		{0x2F, false}, // NUM (lipi control)
	}
	for _, c := range cases {
		if got := IsSvara(c.b); got != c.want {
			t.Errorf("IsSvara(0x%02X) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestIsVarga(t *testing.T) {
	if !IsVarga(0x00) { // ka
		t.Error("ka (0x00) should be varga")
	}
	if IsVarga(0x2A) { // ṣa, non-varga
		t.Error("ṣa (0x2A) should not be varga")
	}
	if IsVarga(0x06) { // META_START
		t.Error("META_START (0x06) should not be varga despite PLACE<=4")
	}
}

func TestKaByte(t *testing.T) {
	b, ok := VyanjanaByte("k")
	if !ok || b != 0x00 {
		t.Errorf("k = 0x%02X, ok=%v, want 0x00", b, ok)
	}
}

func TestAByte(t *testing.T) {
	b, ok := SvaraByte("a")
	if !ok || b != 0x40 {
		t.Errorf("a = 0x%02X, ok=%v, want 0x40", b, ok)
	}
}

func TestKrsnaBytes(t *testing.T) {
	want := []byte{0x00, 0x4C, 0x2A, 0x14, 0x40}
	toks := []string{"k", "ṛ", "ṣ", "ṇ", "a"}
	for i, tok := range toks {
		var b byte
		var ok bool
		if b, ok = SvaraByte(tok); !ok {
			b, ok = VyanjanaByte(tok)
		}
		if !ok || b != want[i] {
			t.Errorf("token %q = 0x%02X, want 0x%02X", tok, b, want[i])
		}
	}
}

func TestDigitWordsMatchWorkedExample(t *testing.T) {
	// "aṣṭottaraśatam 108" worked example from spec.md §8: digit-words
	// for 8, 0, 1 appear in that R-to-L order.
	want8 := []byte{0x40, 0x2A, 0x10, 0x40}
	if len(DigitWords[8]) != len(want8) {
		t.Fatalf("digit 8 word length = %d, want %d", len(DigitWords[8]), len(want8))
	}
	for i, b := range want8 {
		if DigitWords[8][i] != b {
			t.Errorf("digit 8 word[%d] = 0x%02X, want 0x%02X", i, DigitWords[8][i], b)
		}
	}

	want0 := []byte{0x29, 0x88, 0x1C, 0x31, 0x40}
	for i, b := range want0 {
		if DigitWords[0][i] != b {
			t.Errorf("digit 0 word[%d] = 0x%02X, want 0x%02X", i, DigitWords[0][i], b)
		}
	}

	want1 := []byte{0x85, 0x00, 0x40}
	for i, b := range want1 {
		if DigitWords[1][i] != b {
			t.Errorf("digit 1 word[%d] = 0x%02X, want 0x%02X", i, DigitWords[1][i], b)
		}
	}
}

func TestDigitWordIndexClosedVocabulary(t *testing.T) {
	if d, ok := DigitWordIndex(DigitWords[8]); !ok || d != 8 {
		t.Errorf("DigitWordIndex(digit 8) = %d, %v, want 8, true", d, ok)
	}
	if _, ok := DigitWordIndex([]byte{0x00, 0x00, 0x00}); ok {
		t.Error("DigitWordIndex should reject a byte sequence outside the closed vocabulary")
	}
}
