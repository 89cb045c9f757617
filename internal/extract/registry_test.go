package extract

import (
	"errors"
	"testing"

	"github.com/abhyagra/slbc/internal/annotate"
	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/dictchunk"
	"github.com/abhyagra/slbc/internal/registry"
)

func TestResolveAnnotationsBuiltinRef(t *testing.T) {
	res := Result{
		Anvy: []container.Chunk{
			{Type: container.ChunkAnvy, Payload: annotate.Encode([]annotate.Entry{
				{SpanStart: 0, SpanLength: 4, RegistryRef: 1, Text: "root bhū, class 1"},
				{SpanStart: 4, SpanLength: 2, RegistryRef: 0, Text: "no citation"},
			})},
		},
	}

	resolved, sess, err := ResolveAnnotations(res, nil)
	if err != nil {
		t.Fatalf("ResolveAnnotations: %v", err)
	}
	if sess.ID.String() == "" {
		t.Error("expected a non-empty session id")
	}
	if len(resolved) != 2 {
		t.Fatalf("got %d resolved entries, want 2", len(resolved))
	}
	if resolved[0].RegistryKind != registry.KindDhatu || resolved[0].RegistryIAST != "bhū" {
		t.Errorf("entry 0: got kind=%s iast=%q, want dhatu/bhū", resolved[0].RegistryKind, resolved[0].RegistryIAST)
	}
	if resolved[1].RegistryIAST != "" {
		t.Errorf("entry 1: expected no registry citation, got %q", resolved[1].RegistryIAST)
	}
}

func TestResolveAnnotationsEmbeddedExtensionRef(t *testing.T) {
	dictPayload := dictchunk.Encode(dictchunk.Payload{
		RegistryType: registry.KindPratipadika,
		Mode:         dictchunk.ModeEmbedded,
		InlinePratipadika: []registry.PratipadikaEntry{
			{ID: 2001, IAST: "kāvya", StemClass: 1, Linga: 2},
		},
	})
	res := Result{
		Dict: []container.Chunk{
			{Type: container.ChunkDict, Payload: dictPayload},
		},
		Anvy: []container.Chunk{
			{Type: container.ChunkAnvy, Payload: annotate.Encode([]annotate.Entry{
				{SpanStart: 0, SpanLength: 3, RegistryRef: 2001, Text: "extension stem"},
			})},
		},
	}

	resolved, _, err := ResolveAnnotations(res, nil)
	if err != nil {
		t.Fatalf("ResolveAnnotations: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("got %d resolved entries, want 1", len(resolved))
	}
	if resolved[0].RegistryKind != registry.KindPratipadika || resolved[0].RegistryIAST != "kāvya" {
		t.Errorf("got kind=%s iast=%q, want pratipadika/kāvya", resolved[0].RegistryKind, resolved[0].RegistryIAST)
	}
}

func TestResolveAnnotationsExternalTable(t *testing.T) {
	ext := registry.EncodeDhatuTable([]registry.DhatuEntry{{ID: 2001, IAST: "likh-ext", Gana: 6}})
	dictPayload := dictchunk.Encode(dictchunk.Payload{
		RegistryType:     registry.KindDhatu,
		Mode:             dictchunk.ModeExternal,
		ExternalVersion:  registry.FormatVersion,
		ExternalFilename: "extra.sldr",
	})
	res := Result{
		Dict: []container.Chunk{
			{Type: container.ChunkDict, Payload: dictPayload},
		},
		Anvy: []container.Chunk{
			{Type: container.ChunkAnvy, Payload: annotate.Encode([]annotate.Entry{
				{SpanStart: 0, SpanLength: 3, RegistryRef: 2001, Text: "cited from external file"},
			})},
		},
	}

	loader := func(filename string) ([]byte, error) {
		if filename != "extra.sldr" {
			return nil, errors.New("unexpected filename")
		}
		return ext, nil
	}

	resolved, _, err := ResolveAnnotations(res, loader)
	if err != nil {
		t.Fatalf("ResolveAnnotations: %v", err)
	}
	if len(resolved) != 1 || resolved[0].RegistryIAST != "likh-ext" {
		t.Fatalf("got %+v, want a resolved likh-ext entry", resolved)
	}
}

func TestResolveAnnotationsUnknownRefErrors(t *testing.T) {
	res := Result{
		Anvy: []container.Chunk{
			{Type: container.ChunkAnvy, Payload: annotate.Encode([]annotate.Entry{
				{SpanStart: 0, SpanLength: 1, RegistryRef: 9999, Text: "dangling citation"},
			})},
		},
	}
	if _, _, err := ResolveAnnotations(res, nil); err == nil {
		t.Fatal("expected an error for an unresolvable RegistryRef")
	}
}
