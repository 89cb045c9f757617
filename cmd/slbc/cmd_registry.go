package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/registry"
)

func newRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Compile, inspect, query, and summarize dhātu/prātipadika/sandhi-rule registry files",
	}
	cmd.AddCommand(newRegistryCompileCmd())
	cmd.AddCommand(newRegistryInspectCmd())
	cmd.AddCommand(newRegistryLookupCmd())
	cmd.AddCommand(newRegistryStatsCmd())
	return cmd
}

func parseKindArg(s string) (registry.Kind, error) {
	switch s {
	case "dhatu":
		return registry.KindDhatu, nil
	case "pratipadika":
		return registry.KindPratipadika, nil
	case "sandhi-rule":
		return registry.KindSandhiRule, nil
	default:
		return 0, fmt.Errorf("unknown --kind %q: want dhatu|pratipadika|sandhi-rule", s)
	}
}

// sniffKind identifies a compiled registry file's kind from its magic
// bytes, for commands that accept any of the three binary formats.
func sniffKind(data []byte) (registry.Kind, error) {
	for _, k := range []registry.Kind{registry.KindDhatu, registry.KindPratipadika, registry.KindSandhiRule} {
		if len(data) >= 4 && string(data[0:4]) == registry.Magic[k] {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unrecognized registry magic %q", firstFour(data))
}

func firstFour(data []byte) []byte {
	if len(data) < 4 {
		return data
	}
	return data[:4]
}

func newRegistryCompileCmd() *cobra.Command {
	var kindArg, in, out string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a TSV source file into a binary registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(kindArg)
			if err != nil {
				return err
			}
			raw, err := readInput(in)
			if err != nil {
				return err
			}

			var table []byte
			switch kind {
			case registry.KindDhatu:
				entries, err := registry.CompileDhatuTSV(bytes.NewReader(raw))
				if err != nil {
					return err
				}
				table = registry.EncodeDhatuTable(entries)
			case registry.KindPratipadika:
				entries, err := registry.CompilePratipadikaTSV(bytes.NewReader(raw))
				if err != nil {
					return err
				}
				table = registry.EncodePratipadikaTable(entries)
			case registry.KindSandhiRule:
				entries, err := registry.CompileSandhiRuleTSV(bytes.NewReader(raw))
				if err != nil {
					return err
				}
				table = registry.EncodeSandhiRuleTable(entries)
			}

			if err := writeOutput(out, table); err != nil {
				return err
			}
			cmd.PrintErrf("compiled %s registry: %d bytes\n", kind, len(table))
			return nil
		},
	}
	cmd.Flags().StringVar(&kindArg, "kind", "", "dhatu|pratipadika|sandhi-rule")
	cmd.Flags().StringVar(&in, "in", "", "input TSV file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output binary registry file (required; \"-\" writes to stdout)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newRegistryInspectCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a compiled registry file's header",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			kind, err := sniffKind(raw)
			if err != nil {
				return err
			}
			h, err := registry.ParseHeader(raw, kind)
			if err != nil {
				return err
			}
			cmd.Printf("kind=%s version=%d count=%d\n", h.Kind, h.Version, h.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "compiled registry file (default stdin)")
	return cmd
}

func newRegistryLookupCmd() *cobra.Command {
	var in string
	var id uint32

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Resolve an ID against a compiled registry file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			kind, err := sniffKind(raw)
			if err != nil {
				return err
			}

			switch kind {
			case registry.KindDhatu:
				entries, err := registry.DecodeDhatuTable(raw)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.ID == id {
						cmd.Println(e.IAST)
						return nil
					}
				}
			case registry.KindPratipadika:
				entries, err := registry.DecodePratipadikaTable(raw)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.ID == id {
						cmd.Println(e.IAST)
						return nil
					}
				}
			case registry.KindSandhiRule:
				entries, err := registry.DecodeSandhiRuleTable(raw)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.ID == id {
						cmd.Println(e.IAST)
						return nil
					}
				}
			}
			return fmt.Errorf("id %d not found in %s registry", id, kind)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "compiled registry file (default stdin)")
	cmd.Flags().Uint32Var(&id, "id", 0, "entry ID to resolve")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newRegistryStatsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load the three built-in registries into a sealed store and report per-kind counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = ":memory:"
			}
			store, err := registry.NewStore(registry.Config{Path: path}, nil)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := registry.LoadBuiltinTables(store); err != nil {
				return err
			}
			sess := registry.NewSession(store)

			stats, err := sess.Store.Stats()
			if err != nil {
				return err
			}
			for kind, count := range stats {
				cmd.Printf("%s: %d\n", kind, count)
			}
			cmd.PrintErrf("session %s\n", sess.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "db", "", "sqlite database path (default an in-memory database)")
	return cmd
}
