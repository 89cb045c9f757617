package iast

import (
	"testing"

	"github.com/abhyagra/slbc/internal/phoneme"
)

func TestTokenizeKa(t *testing.T) {
	toks, err := Tokenize("ka")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[0].Kind != KindVyanjana || toks[0].Phoneme != 0x00 {
		t.Errorf("token 0 = %+v, want vyanjana 0x00", toks[0])
	}
	if toks[1].Kind != KindSvara || toks[1].Phoneme != 0x40 {
		t.Errorf("token 1 = %+v, want svara 0x40", toks[1])
	}
}

func TestTokenizeDigraphBeforePrefix(t *testing.T) {
	toks, err := Tokenize("kha")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	kh, _ := phoneme.VyanjanaByte("kh")
	if toks[0].Phoneme != kh {
		t.Errorf("kha should lex as digraph 'kh' + 'a', got first token %+v", toks[0])
	}
}

func TestTokenizeNumber(t *testing.T) {
	toks, err := Tokenize("108")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != KindNumber || toks[0].Digits != "108" {
		t.Errorf("got %+v, want single Number token \"108\"", toks)
	}
}

func TestTokenizeDandaAndDoubleDanda(t *testing.T) {
	toks, err := Tokenize("a|a||")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	kinds := []Kind{KindSvara, KindDanda, KindSvara, KindDoubleDanda}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(kinds), toks)
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeAvagraha(t *testing.T) {
	toks, err := Tokenize("'")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != KindAvagraha {
		t.Errorf("got %+v, want single Avagraha token", toks)
	}
}

func TestTokenizeUnrecognized(t *testing.T) {
	if _, err := Tokenize("xz9q!"); err == nil {
		t.Error("expected error tokenizing illegal character")
	}
}

func TestTokenizeSpaceCollapses(t *testing.T) {
	toks, err := Tokenize("a   a")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 3 || toks[1].Kind != KindSpace {
		t.Errorf("got %+v, want [svara, space, svara]", toks)
	}
}
