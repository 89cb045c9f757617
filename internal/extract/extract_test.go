package extract

import (
	"testing"

	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/iast"
	"github.com/abhyagra/slbc/internal/stream"
)

func encodePhonChunk(t *testing.T, s string) container.Chunk {
	t.Helper()
	toks, err := iast.Tokenize(s)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", s, err)
	}
	return container.Chunk{Type: container.ChunkPhon, Payload: stream.Encode(toks)}
}

func countKind(events []stream.Event, kind stream.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestExtractPathaKeepsLipiDropsDict(t *testing.T) {
	f := container.File{
		Header: container.Header{Version: container.VersionBase, Flags: container.FlagHasLipi},
		Chunks: []container.Chunk{
			encodePhonChunk(t, "rāma sītā"),
			{Type: container.ChunkDict, Payload: []byte{0x00, 0x00, 0x00}},
		},
	}
	res, err := Extract(f, ModePatha)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if countKind(res.Events, stream.EventSpace) != 1 {
		t.Errorf("expected 1 Space event in pāṭha mode, got %d", countKind(res.Events, stream.EventSpace))
	}
	if len(res.Dict) != 0 {
		t.Errorf("expected DICT chunks dropped in pāṭha mode, got %d", len(res.Dict))
	}
}

func TestExtractBhashaOnlyStripsLipiKeepsPhonemes(t *testing.T) {
	f := container.File{
		Header: container.Header{Version: container.VersionBase, Flags: container.FlagHasLipi},
		Chunks: []container.Chunk{
			encodePhonChunk(t, "rāma sītā"),
		},
	}
	res, err := Extract(f, ModeBhashaOnly)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if countKind(res.Events, stream.EventSpace) != 0 {
		t.Errorf("expected Space events stripped in bhāṣā-only mode, got %d", countKind(res.Events, stream.EventSpace))
	}
	if countKind(res.Events, stream.EventPhoneme) == 0 {
		t.Error("expected phoneme events preserved in bhāṣā-only mode")
	}
}

func TestExtractBhashaOnlyStripsNumSpan(t *testing.T) {
	f := container.File{
		Header: container.Header{Version: container.VersionBase, Flags: container.FlagHasLipi},
		Chunks: []container.Chunk{
			encodePhonChunk(t, "108"),
		},
	}
	res, err := Extract(f, ModeBhashaOnly)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if countKind(res.Events, stream.EventNumSpan) != 0 {
		t.Error("expected NumSpan stripped in bhāṣā-only mode")
	}
	if countKind(res.Events, stream.EventSankhyaSpan) != 1 {
		t.Error("expected SankhyaSpan retained in bhāṣā-only mode")
	}
}

func TestExtractVyakhyaKeepsDictAndAnvy(t *testing.T) {
	f := container.File{
		Header: container.Header{Version: container.VersionBase, Flags: container.FlagHasLipi | container.FlagVya},
		Chunks: []container.Chunk{
			encodePhonChunk(t, "rāma"),
			{Type: container.ChunkDict, Payload: []byte{0x00, 0x00, 0x00}},
			{Type: container.ChunkAnvy, Payload: []byte{0x01, 0x02}},
		},
	}
	res, err := Extract(f, ModeVyakhya)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Dict) != 1 || len(res.Anvy) != 1 {
		t.Errorf("expected DICT and ANVY chunks retained in vyākhyā mode, got dict=%d anvy=%d", len(res.Dict), len(res.Anvy))
	}
}

func TestExtractMetaEnvelopeStrippedOutsideVyakhya(t *testing.T) {
	payload := []byte{stream.MetaStart, 0xFD, 0x01, 0xFE, stream.MetaEnd}
	f := container.File{
		Header: container.Header{Version: container.VersionBase},
		Chunks: []container.Chunk{
			{Type: container.ChunkPhon, Payload: payload},
		},
	}
	res, err := Extract(f, ModePatha)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if countKind(res.Events, stream.EventMetaEnvelope) != 0 {
		t.Error("expected META envelope stripped in pāṭha mode")
	}

	res, err = Extract(f, ModeVyakhya)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if countKind(res.Events, stream.EventMetaEnvelope) != 1 {
		t.Error("expected META envelope retained in vyākhyā mode")
	}
}
