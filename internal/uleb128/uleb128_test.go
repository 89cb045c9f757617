package uleb128

import "testing"

func TestRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 300, 16384, 0xFFFFFFFF, 0x7FFFFFFF}
	for _, v := range values {
		buf := Append(nil, v)
		got, n, err := Read(buf, 0)
		if err != nil {
			t.Fatalf("Read(%d) error: %v", v, err)
		}
		if got != v {
			t.Errorf("Read(Append(%d)) = %d", v, got)
		}
		if n != len(buf) {
			t.Errorf("Read consumed %d bytes, Append produced %d", n, len(buf))
		}
	}
}

func TestRejectsSixByteEncoding(t *testing.T) {
	// Six continuation-flagged bytes, terminated on the 6th.
	buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, _, err := Read(buf, 0); err == nil {
		t.Error("expected error decoding a 6-byte ULEB128 encoding")
	}
}

func TestRejectsOverflow(t *testing.T) {
	// 5 bytes encoding a value > 2^32-1: 0xFFFFFFFF is the max 5-byte
	// value; bump the top nibble to overflow.
	buf := Append(nil, 0xFFFFFFFF)
	buf[len(buf)-1] |= 0x70 // push extra bits into the final byte
	if _, _, err := Read(buf, 0); err == nil {
		t.Error("expected error decoding a value > 2^32-1")
	}
}

func TestTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80}
	if _, _, err := Read(buf, 0); err == nil {
		t.Error("expected error decoding a truncated ULEB128 value")
	}
}
