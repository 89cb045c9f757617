package registry

import (
	"strings"
	"testing"
)

func TestDhatuTableRoundTrip(t *testing.T) {
	want := []DhatuEntry{
		{ID: 1, IAST: "bhū", Gana: 1, Pada: 0, Karma: 0, ItFlags: 0, SetFlags: 1},
		{ID: 2000, IAST: "kṛ", Gana: 8, Pada: 2, Karma: 1, ItFlags: 3, SetFlags: 0},
	}
	enc := EncodeDhatuTable(want)
	got, err := DecodeDhatuTable(enc)
	if err != nil {
		t.Fatalf("DecodeDhatuTable: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPratipadikaTableRoundTrip(t *testing.T) {
	want := []PratipadikaEntry{
		{ID: 1, IAST: "rāma", StemClass: 1, Linga: 0, Flags: 0},
		{ID: 2, IAST: "nadī", StemClass: 5, Linga: 1, Flags: 2},
	}
	enc := EncodePratipadikaTable(want)
	got, err := DecodePratipadikaTable(enc)
	if err != nil {
		t.Fatalf("DecodePratipadikaTable: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSandhiRuleTableRoundTrip(t *testing.T) {
	want := []SandhiRuleEntry{
		{ID: 1, IAST: "jaśtva", Type: 2, SutraRef: "8.2.39"},
	}
	enc := EncodeSandhiRuleTable(want)
	got, err := DecodeSandhiRuleTable(enc)
	if err != nil {
		t.Fatalf("DecodeSandhiRuleTable: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseHeaderRejectsWrongMagic(t *testing.T) {
	enc := EncodeDhatuTable(nil)
	if _, err := DecodePratipadikaTable(enc); err == nil {
		t.Error("expected error decoding a dhātu table as prātipadika")
	}
}

func TestCompileDhatuTSV(t *testing.T) {
	src := "# comment\n1\tbhū\t1\t0\t0\t0\t1\n\n2000\tkṛ\t8\t2\t1\t3\t0\n"
	entries, err := CompileDhatuTSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("CompileDhatuTSV: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].IAST != "bhū" || entries[0].ID != 1 {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].ID != 2000 || entries[1].Gana != 8 {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}

func TestCompileDhatuTSVRejectsBadFieldCount(t *testing.T) {
	src := "1\tbhū\t1\n"
	if _, err := CompileDhatuTSV(strings.NewReader(src)); err == nil {
		t.Error("expected error for malformed TSV row")
	}
}

func TestStoreLoadBuiltinAndLookup(t *testing.T) {
	store, err := NewStore(Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if err := LoadBuiltinTables(store); err != nil {
		t.Fatalf("LoadBuiltinTables: %v", err)
	}

	iast, err := store.Lookup(KindDhatu, 1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if iast != "bhū" {
		t.Errorf("Lookup(dhatu, 1) = %q, want %q", iast, "bhū")
	}

	if _, err := store.Lookup(KindDhatu, 9999); err == nil {
		t.Error("expected error looking up an unknown ID")
	}
}

func TestStoreExtensionCollisionIsFatal(t *testing.T) {
	store, err := NewStore(Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if err := LoadBuiltinTables(store); err != nil {
		t.Fatalf("LoadBuiltinTables: %v", err)
	}
	if err := store.LoadExtension(KindDhatu, map[uint32]string{1: "duplicate"}); err == nil {
		t.Error("expected RegistryError merging an extension ID that collides with a builtin one")
	}
}

func TestStoreExtensionRejectsStandardRangeID(t *testing.T) {
	store, err := NewStore(Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if err := store.LoadExtension(KindDhatu, map[uint32]string{500: "bogus"}); err == nil {
		t.Error("expected RegistryError loading an extension entry inside the standard ID range")
	}
}

func TestSessionSealsStore(t *testing.T) {
	store, err := NewStore(Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if err := LoadBuiltinTables(store); err != nil {
		t.Fatalf("LoadBuiltinTables: %v", err)
	}
	sess := NewSession(store)
	if sess.ID.String() == "" {
		t.Error("expected a non-empty session ID")
	}
	if err := store.LoadExtension(KindDhatu, map[uint32]string{2001: "x"}); err == nil {
		t.Error("expected error loading an extension into a sealed store")
	}
}

func TestStoreStats(t *testing.T) {
	store, err := NewStore(Config{Path: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if err := LoadBuiltinTables(store); err != nil {
		t.Fatalf("LoadBuiltinTables: %v", err)
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats["dhatu"] != int64(len(BuiltinDhatu)) {
		t.Errorf("stats[dhatu] = %d, want %d", stats["dhatu"], len(BuiltinDhatu))
	}
}
