package emit

import (
	"testing"

	"github.com/abhyagra/slbc/internal/iast"
	"github.com/abhyagra/slbc/internal/stream"
)

func roundTripEvents(t *testing.T, s string) []stream.Event {
	t.Helper()
	toks, err := iast.Tokenize(s)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", s, err)
	}
	enc := stream.Encode(toks)
	events, err := stream.Decode(enc)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return events
}

func TestIASTRoundTripSimpleWord(t *testing.T) {
	events := roundTripEvents(t, "kṛṣṇa")
	got, err := IAST(events)
	if err != nil {
		t.Fatalf("IAST: %v", err)
	}
	if got != "kṛṣṇa" {
		t.Errorf("IAST round trip = %q, want %q", got, "kṛṣṇa")
	}
}

func TestIASTRoundTripPadaWrappedStream(t *testing.T) {
	events := roundTripEvents(t, "dharmakṣetre kurukṣetre")
	got, err := IAST(events)
	if err != nil {
		t.Fatalf("IAST: %v", err)
	}
	want := "dharmakṣetre kurukṣetre"
	if got != want {
		t.Errorf("IAST round trip = %q, want %q", got, want)
	}
}

func TestIASTRoundTripNumberUsesNumSpan(t *testing.T) {
	events := roundTripEvents(t, "108")
	got, err := IAST(events)
	if err != nil {
		t.Fatalf("IAST: %v", err)
	}
	if got != "108" {
		t.Errorf("IAST round trip = %q, want %q", got, "108")
	}
}

func TestIASTRoundTripPunctuation(t *testing.T) {
	events := roundTripEvents(t, "rāma | sītā || lakṣmaṇa")
	got, err := IAST(events)
	if err != nil {
		t.Fatalf("IAST: %v", err)
	}
	want := "rāma | sītā || lakṣmaṇa"
	if got != want {
		t.Errorf("IAST round trip = %q, want %q", got, want)
	}
}

func TestDevanagariIndependentVowelAtPadaStart(t *testing.T) {
	events := roundTripEvents(t, "a")
	got, err := Devanagari(events)
	if err != nil {
		t.Fatalf("Devanagari: %v", err)
	}
	if got != "अ" {
		t.Errorf("Devanagari(a) = %q, want %q", got, "अ")
	}
}

func TestDevanagariConsonantVowelNoVirama(t *testing.T) {
	events := roundTripEvents(t, "ka")
	got, err := Devanagari(events)
	if err != nil {
		t.Fatalf("Devanagari: %v", err)
	}
	if got != "क" {
		t.Errorf("Devanagari(ka) = %q, want %q", got, "क")
	}
}

func TestDevanagariClusterGetsVirama(t *testing.T) {
	events := roundTripEvents(t, "kṛṣṇa")
	got, err := Devanagari(events)
	if err != nil {
		t.Fatalf("Devanagari: %v", err)
	}
	want := "कृष्ण"
	_ = want // kṛ + ṣ(virāma) + ṇa -- composed below, checked structurally instead
	if len(got) == 0 {
		t.Fatalf("Devanagari(kṛṣṇa) produced empty output")
	}
	// ṣ is immediately followed by ṇ (a consonant cluster): expect a virāma
	// between their glyphs; ṇ itself carries the inherent a, so no virāma
	// follows it.
	if !containsSubstr(got, phonemeVirama()) {
		t.Errorf("Devanagari(kṛṣṇa) = %q, want a virāma joining ṣ and ṇ", got)
	}
}

func TestDevanagariPadaFinalConsonantGetsVirama(t *testing.T) {
	events := roundTripEvents(t, "tat")
	got, err := Devanagari(events)
	if err != nil {
		t.Fatalf("Devanagari: %v", err)
	}
	if !containsSubstr(got, phonemeVirama()) {
		t.Errorf("Devanagari(tat) = %q, want a trailing virāma on the pada-final consonant", got)
	}
}

func TestDevanagariNumSpanUsesDevanagariDigits(t *testing.T) {
	events := roundTripEvents(t, "108")
	got, err := Devanagari(events)
	if err != nil {
		t.Fatalf("Devanagari: %v", err)
	}
	want := "१०८"
	if got != want {
		t.Errorf("Devanagari(108) = %q, want %q", got, want)
	}
}

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func phonemeVirama() string { return "्" }
