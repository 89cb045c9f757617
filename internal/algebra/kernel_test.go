package algebra

import (
	"testing"

	"github.com/abhyagra/slbc/internal/phoneme"
)

func TestGunaVrddhiWorkedExamples(t *testing.T) {
	i, _ := phoneme.SvaraByte("i")
	if got := Guna(i); got != 0x85 {
		t.Errorf("guna(i) = 0x%02X, want 0x85", got)
	}
	if got := Vrddhi(i); got != 0x86 {
		t.Errorf("vrddhi(i) = 0x%02X, want 0x86", got)
	}
}

func TestJastvaWorkedExample(t *testing.T) {
	ka, _ := phoneme.VyanjanaByte("k")
	if got := Jastva(ka); got != 0x02 {
		t.Errorf("jastva(ka) = 0x%02X, want 0x02", got)
	}
}

func TestSamprasaranaWorkedExample(t *testing.T) {
	la, _ := phoneme.VyanjanaByte("l")
	if got := SamprasaranaToSvara(la); got != 0x4F {
		t.Errorf("samprasarana_to_svara(la) = 0x%02X, want 0x4F", got)
	}
}

func TestToggleInvolutions(t *testing.T) {
	for tok := range map[string]bool{"k": true, "kh": true, "g": true, "gh": true} {
		c, _ := phoneme.VyanjanaByte(tok)
		if got := ToggleVoice(ToggleVoice(c)); got != c {
			t.Errorf("ToggleVoice not involutive for %q: got 0x%02X want 0x%02X", tok, got, c)
		}
		if got := ToggleAspiration(ToggleAspiration(c)); got != c {
			t.Errorf("ToggleAspiration not involutive for %q: got 0x%02X want 0x%02X", tok, got, c)
		}
	}
}

func TestHrasvaDirghaRoundTrip(t *testing.T) {
	i, _ := phoneme.SvaraByte("i")
	dirghaI := Dirgha(i)
	if got := Hrasva(dirghaI); got != Hrasva(i) {
		t.Errorf("hrasva(dirgha(i)) = 0x%02X, want 0x%02X", got, Hrasva(i))
	}
}

func TestGunaVrddhiPreserveAccent(t *testing.T) {
	i, _ := phoneme.SvaraByte("i")
	accented := phoneme.WithAccent(i, phoneme.AccentUdatta)
	if got := phoneme.AccentOf(Guna(accented)); got != phoneme.AccentUdatta {
		t.Errorf("guna did not preserve accent: got %d want %d", got, phoneme.AccentUdatta)
	}
	if got := phoneme.AccentOf(Vrddhi(accented)); got != phoneme.AccentUdatta {
		t.Errorf("vrddhi did not preserve accent: got %d want %d", got, phoneme.AccentUdatta)
	}
}

func TestDomainPanicOnWrongShape(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic calling Guna on a non-svara byte")
		}
	}()
	ka, _ := phoneme.VyanjanaByte("k")
	Guna(ka)
}

func TestJastvaRequiresVarga(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic calling Jastva on a non-varga byte (sibilant)")
		}
	}()
	sa, _ := phoneme.VyanjanaByte("s")
	Jastva(sa)
}
