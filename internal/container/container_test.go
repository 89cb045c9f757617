package container

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Version: VersionBase, Flags: FlagHasLipi | FlagInterleaved}
	enc := h.Encode()
	if len(enc) != HeaderLength {
		t.Fatalf("encoded header length = %d, want %d", len(enc), HeaderLength)
	}
	got, off, err := ParseHeader(enc)
	if err != nil {
		t.Fatalf("ParseHeader error: %v", err)
	}
	if off != HeaderLength {
		t.Errorf("chunk offset = %d, want %d", off, HeaderLength)
	}
	if got.Version != h.Version || got.Flags != h.Flags {
		t.Errorf("got %+v, want %+v", got, h)
	}
	if got.Mode() != ModePatha {
		t.Errorf("Mode() = %v, want ModePatha", got.Mode())
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	data := make([]byte, HeaderLength)
	copy(data, "XXXX")
	if _, _, err := ParseHeader(data); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestParseHeaderRejectsReservedFlagBits(t *testing.T) {
	h := Header{Version: VersionBase, Flags: 0b10000000}
	enc := h.Encode()
	if _, _, err := ParseHeader(enc); err == nil {
		t.Error("expected error for nonzero reserved flag bits")
	}
}

func TestFileRoundTripScenario4(t *testing.T) {
	h := Header{Version: VersionBase, Flags: FlagHasLipi | FlagInterleaved}
	phonPayload := []byte{0x26, 0x1C, 0x11, 0x00, 0x33, 0x48, 0x2A, 0x1A, 0x48, 0x00, 0x2E, 0x2E}
	chunks := []Chunk{{Type: ChunkPhon, Payload: phonPayload}}
	data := EncodeFile(h, chunks)

	f, err := DecodeFile(data)
	if err != nil {
		t.Fatalf("DecodeFile error: %v", err)
	}
	if len(f.Chunks) != 1 || f.Chunks[0].Type != ChunkPhon {
		t.Fatalf("got %+v", f.Chunks)
	}
	if !bytesEqual(f.Chunks[0].Payload, phonPayload) {
		t.Errorf("payload = % X, want % X", f.Chunks[0].Payload, phonPayload)
	}
}

func TestDecodeFileMissingEOF(t *testing.T) {
	h := Header{Version: VersionBase, Flags: FlagHasLipi}
	data := h.Encode()
	data = Chunk{Type: ChunkPhon, Payload: []byte{0x00}}.Encode(data)
	if _, err := DecodeFile(data); err == nil {
		t.Error("expected error for missing EOF chunk")
	}
}

func TestDecodeFileTruncatedChunkPayload(t *testing.T) {
	h := Header{Version: VersionBase}
	data := h.Encode()
	data = append(data, byte(ChunkPhon), 0x05) // declares 5 bytes, supplies none
	if _, err := DecodeFile(data); err == nil {
		t.Error("expected error for truncated chunk payload")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
