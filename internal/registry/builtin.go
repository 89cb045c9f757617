package registry

// BuiltinDhatu is the bootstrap dhātu table: a small, hand-picked set of
// high-frequency verbal roots, not a full Dhātupāṭha (spec.md Non-goals:
// "it does not ship a full Dhātupāṭha ... it ships a bootstrap
// registry and supports append-only extensions").
var BuiltinDhatu = []DhatuEntry{
	{ID: 1, IAST: "bhū", Gana: 1, Pada: 0, Karma: 0},
	{ID: 2, IAST: "kṛ", Gana: 8, Pada: 2, Karma: 1},
	{ID: 3, IAST: "gam", Gana: 1, Pada: 0, Karma: 0},
	{ID: 4, IAST: "as", Gana: 2, Pada: 0, Karma: 0},
	{ID: 5, IAST: "han", Gana: 2, Pada: 0, Karma: 1},
	{ID: 6, IAST: "dā", Gana: 3, Pada: 2, Karma: 1},
	{ID: 7, IAST: "budh", Gana: 1, Pada: 2, Karma: 1},
	{ID: 8, IAST: "paṭh", Gana: 1, Pada: 0, Karma: 1},
	{ID: 9, IAST: "likh", Gana: 6, Pada: 0, Karma: 1},
	{ID: 10, IAST: "vac", Gana: 2, Pada: 0, Karma: 1},
}

// BuiltinPratipadika is the bootstrap nominal-stem table.
var BuiltinPratipadika = []PratipadikaEntry{
	{ID: 1, IAST: "rāma", StemClass: 1, Linga: 0},
	{ID: 2, IAST: "sītā", StemClass: 2, Linga: 1},
	{ID: 3, IAST: "phala", StemClass: 1, Linga: 2},
	{ID: 4, IAST: "guru", StemClass: 3, Linga: 0},
	{ID: 5, IAST: "mati", StemClass: 4, Linga: 1},
	{ID: 6, IAST: "deva", StemClass: 1, Linga: 0},
	{ID: 7, IAST: "nadī", StemClass: 5, Linga: 1},
	{ID: 8, IAST: "vāri", StemClass: 4, Linga: 2},
}

// BuiltinSandhiRule is the bootstrap sandhi-rule table — each entry
// names the authorizing sūtra, not the rule's applied transformation
// (see SandhiRuleEntry's doc comment for why).
var BuiltinSandhiRule = []SandhiRuleEntry{
	{ID: 1, IAST: "guṇa-sandhi", Type: 0, SutraRef: "6.1.87"},
	{ID: 2, IAST: "vṛddhi-sandhi", Type: 0, SutraRef: "6.1.88"},
	{ID: 3, IAST: "yaṇ-sandhi", Type: 1, SutraRef: "6.1.77"},
	{ID: 4, IAST: "jaśtva", Type: 2, SutraRef: "8.2.39"},
	{ID: 5, IAST: "anusvāra-parasavarṇa", Type: 3, SutraRef: "8.4.58"},
}

// dhatuIASTMap, pratipadikaIASTMap, and sandhiRuleIASTMap adapt the
// builtin tables to the id->IAST shape Store.LoadBuiltin expects;
// metadata beyond the IAST token is looked up from the typed tables
// above when a caller needs the full entry, not just the headword.
func dhatuIASTMap() map[uint32]string {
	m := make(map[uint32]string, len(BuiltinDhatu))
	for _, e := range BuiltinDhatu {
		m[e.ID] = e.IAST
	}
	return m
}

func pratipadikaIASTMap() map[uint32]string {
	m := make(map[uint32]string, len(BuiltinPratipadika))
	for _, e := range BuiltinPratipadika {
		m[e.ID] = e.IAST
	}
	return m
}

func sandhiRuleIASTMap() map[uint32]string {
	m := make(map[uint32]string, len(BuiltinSandhiRule))
	for _, e := range BuiltinSandhiRule {
		m[e.ID] = e.IAST
	}
	return m
}

// LoadBuiltinTables loads all three bootstrap tables into store. Callers
// typically follow this with zero or more LoadExtension calls, then
// registry.NewSession to seal the merge.
func LoadBuiltinTables(store *Store) error {
	if err := store.LoadBuiltin(KindDhatu, dhatuIASTMap()); err != nil {
		return err
	}
	if err := store.LoadBuiltin(KindPratipadika, pratipadikaIASTMap()); err != nil {
		return err
	}
	if err := store.LoadBuiltin(KindSandhiRule, sandhiRuleIASTMap()); err != nil {
		return err
	}
	return nil
}
