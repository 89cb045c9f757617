package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/annotate"
	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/dictchunk"
	"github.com/abhyagra/slbc/internal/registry"
)

// jsonEntry is the --from file's on-disk shape. encoding/json is the
// only JSON codec in play anywhere in this tree — annotate's wire
// format (internal/annotate/anvy.go) stays ULEB128-framed like every
// other chunk payload; JSON is used here solely as the CLI's input
// convenience format, where no registry or container library in the
// example pack offers anything better than the standard library.
type jsonEntry struct {
	SpanStart   uint32 `json:"span_start"`
	SpanLength  uint32 `json:"span_length"`
	RegistryRef uint32 `json:"registry_ref"`
	Text        string `json:"text"`
}

func newAnnotateCmd() *cobra.Command {
	var in, out, from, sldr, slpr, slsr string

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Append an ANVY commentary chunk, and optional external registry references, to a .slbc file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			f, err := container.DecodeFile(raw)
			if err != nil {
				return err
			}

			rawEntries, err := readInput(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			var jsonEntries []jsonEntry
			if err := json.Unmarshal(rawEntries, &jsonEntries); err != nil {
				return fmt.Errorf("--from: invalid JSON: %w", err)
			}
			entries := make([]annotate.Entry, len(jsonEntries))
			for i, je := range jsonEntries {
				entries[i] = annotate.Entry{
					SpanStart:   je.SpanStart,
					SpanLength:  je.SpanLength,
					RegistryRef: je.RegistryRef,
					Text:        je.Text,
				}
			}

			chunks := append([]container.Chunk(nil), f.Chunks...)
			for _, ref := range []struct {
				path string
				kind registry.Kind
			}{
				{sldr, registry.KindDhatu},
				{slpr, registry.KindPratipadika},
				{slsr, registry.KindSandhiRule},
			} {
				if ref.path == "" {
					continue
				}
				payload := dictchunk.Encode(dictchunk.Payload{
					RegistryType:     ref.kind,
					Mode:             dictchunk.ModeExternal,
					ExternalVersion:  registry.FormatVersion,
					ExternalFilename: ref.path,
				})
				chunks = append(chunks, container.Chunk{Type: container.ChunkDict, Payload: payload})
			}
			chunks = append(chunks, container.Chunk{Type: container.ChunkAnvy, Payload: annotate.Encode(entries)})

			h := f.Header
			h.Flags |= container.FlagVya
			data := container.EncodeFile(h, chunks)
			if err := writeOutput(out, data); err != nil {
				return err
			}
			cmd.PrintErrf("appended %d ANVY entr(y/ies) and %d external registry reference(s)\n",
				len(entries), countExternalRefs(sldr, slpr, slsr))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input .slbc file (required)")
	cmd.Flags().StringVar(&out, "out", "", "output .slbc file (default stdout)")
	cmd.Flags().StringVar(&from, "from", "", "JSON file of commentary entries to add (required)")
	cmd.Flags().StringVar(&sldr, "sldr", "", "path to a compiled external dhātu registry (.sldr) to reference")
	cmd.Flags().StringVar(&slpr, "slpr", "", "path to a compiled external prātipadika registry (.slpr) to reference")
	cmd.Flags().StringVar(&slsr, "slsr", "", "path to a compiled external sandhi-rule registry (.slsr) to reference")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func countExternalRefs(paths ...string) int {
	n := 0
	for _, p := range paths {
		if p != "" {
			n++
		}
	}
	return n
}
