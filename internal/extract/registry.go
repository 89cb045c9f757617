package extract

import (
	"github.com/abhyagra/slbc/internal/annotate"
	"github.com/abhyagra/slbc/internal/dictchunk"
	"github.com/abhyagra/slbc/internal/registry"
	"github.com/abhyagra/slbc/internal/slbcerr"
)

// ResolvedEntry pairs one ANVY commentary entry with the registry
// citation its RegistryRef names, once that citation has been resolved
// against a sealed session's merged table.
type ResolvedEntry struct {
	annotate.Entry
	RegistryKind registry.Kind
	RegistryIAST string
}

// ResolveAnnotations builds the merged registry.Store a vyākhyā-mode
// Result's DICT chunks describe — builtin tables first, then every
// embedded and external extension the file cites, in file order — and
// seals it into a Session before any ANVY entry is decoded (spec.md §5:
// "no decoding begins before merge is sealed"). It then resolves every retained ANVY entry's RegistryRef
// against that session.
//
// loadExternal reads an external registry file named by an external or
// hybrid DICT chunk; the CLI passes os.ReadFile, tests an in-memory
// stand-in.
func ResolveAnnotations(res Result, loadExternal func(filename string) ([]byte, error)) ([]ResolvedEntry, registry.Session, error) {
	store, err := registry.NewStore(registry.Config{Path: ":memory:"}, nil)
	if err != nil {
		return nil, registry.Session{}, err
	}
	if err := registry.LoadBuiltinTables(store); err != nil {
		return nil, registry.Session{}, err
	}

	resolver := dictchunk.Resolver{ExternalLoader: loadExternal}
	for _, c := range res.Dict {
		p, err := dictchunk.Decode(c.Payload)
		if err != nil {
			return nil, registry.Session{}, err
		}
		if p.Mode == dictchunk.ModeExternal || p.Mode == dictchunk.ModeHybrid {
			data, err := resolver.ResolveExternal(p)
			if err != nil {
				return nil, registry.Session{}, err
			}
			if err := loadExternalTable(store, p.RegistryType, data); err != nil {
				return nil, registry.Session{}, err
			}
		}
		if p.Mode == dictchunk.ModeEmbedded || p.Mode == dictchunk.ModeHybrid {
			if err := loadInlineEntries(store, p); err != nil {
				return nil, registry.Session{}, err
			}
		}
	}

	// Seal happens here, the one chokepoint after which no further
	// LoadBuiltin/LoadExtension call is legal — every DICT chunk above
	// has already been merged in.
	sess := registry.NewSession(store)

	var entries []annotate.Entry
	for _, c := range res.Anvy {
		decoded, err := annotate.Decode(c.Payload)
		if err != nil {
			return nil, registry.Session{}, err
		}
		entries = append(entries, decoded...)
	}

	out := make([]ResolvedEntry, 0, len(entries))
	for _, e := range entries {
		re := ResolvedEntry{Entry: e}
		if e.RegistryRef != 0 {
			kind, iast, err := lookupAnyKind(sess.Store, e.RegistryRef)
			if err != nil {
				return nil, registry.Session{}, err
			}
			re.RegistryKind, re.RegistryIAST = kind, iast
		}
		out = append(out, re)
	}
	return out, sess, nil
}

// loadExternalTable decodes a compiled registry binary of the given
// kind and merges its entries into store as extension rows.
func loadExternalTable(store *registry.Store, kind registry.Kind, data []byte) error {
	switch kind {
	case registry.KindDhatu:
		entries, err := registry.DecodeDhatuTable(data)
		if err != nil {
			return err
		}
		m := make(map[uint32]string, len(entries))
		for _, e := range entries {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(kind, m)
	case registry.KindPratipadika:
		entries, err := registry.DecodePratipadikaTable(data)
		if err != nil {
			return err
		}
		m := make(map[uint32]string, len(entries))
		for _, e := range entries {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(kind, m)
	case registry.KindSandhiRule:
		entries, err := registry.DecodeSandhiRuleTable(data)
		if err != nil {
			return err
		}
		m := make(map[uint32]string, len(entries))
		for _, e := range entries {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(kind, m)
	default:
		return slbcerr.RegistryNoID("unknown DICT registry-type in external table", nil)
	}
}

// loadInlineEntries merges a DICT chunk's embedded/hybrid inline
// entries into store as extension rows, the same way an external
// table's entries are merged.
func loadInlineEntries(store *registry.Store, p dictchunk.Payload) error {
	switch p.RegistryType {
	case registry.KindDhatu:
		m := make(map[uint32]string, len(p.InlineDhatu))
		for _, e := range p.InlineDhatu {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(p.RegistryType, m)
	case registry.KindPratipadika:
		m := make(map[uint32]string, len(p.InlinePratipadika))
		for _, e := range p.InlinePratipadika {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(p.RegistryType, m)
	case registry.KindSandhiRule:
		m := make(map[uint32]string, len(p.InlineSandhiRule))
		for _, e := range p.InlineSandhiRule {
			m[e.ID] = e.IAST
		}
		return store.LoadExtension(p.RegistryType, m)
	default:
		return slbcerr.RegistryNoID("unknown DICT registry-type in inline entries", nil)
	}
}

// lookupAnyKind tries an ANVY RegistryRef against all three registry
// kinds in turn: the ANVY wire format (spec.md §4.9) carries only the
// numeric ID, not which of the three tables it names.
func lookupAnyKind(store *registry.Store, id uint32) (registry.Kind, string, error) {
	for _, kind := range []registry.Kind{registry.KindDhatu, registry.KindPratipadika, registry.KindSandhiRule} {
		if iast, err := store.Lookup(kind, id); err == nil {
			return kind, iast, nil
		}
	}
	return 0, "", slbcerr.Registry(uint64(id), "ANVY registry reference not found in dhātu, prātipadika, or sandhi-rule registry", nil)
}
