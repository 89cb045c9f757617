package annotate

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := []Entry{
		{SpanStart: 0, SpanLength: 4, RegistryRef: 0, Text: "opening invocation"},
		{SpanStart: 4, SpanLength: 6, RegistryRef: 42, Text: "root bhū, class 1"},
	}
	got, err := Decode(Encode(want))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(Encode(nil))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestDecodeTruncatedText(t *testing.T) {
	data := Encode([]Entry{{SpanStart: 0, SpanLength: 1, Text: "ab"}})
	_, err := Decode(data[:len(data)-1])
	if err == nil {
		t.Fatal("expected a truncation error")
	}
}
