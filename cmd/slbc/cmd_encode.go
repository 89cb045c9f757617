package main

import (
	"github.com/spf13/cobra"
	"github.com/dustin/go-humanize"

	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/iast"
	"github.com/abhyagra/slbc/internal/stream"
)

func newEncodeCmd() *cobra.Command {
	var in, out string
	var vedic bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode normalized IAST text to a .slbc container",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			text := iast.Normalize(string(raw))

			toks, err := iast.Tokenize(text)
			if err != nil {
				return err
			}
			payload := stream.Encode(toks)

			version := container.VersionBase
			for _, t := range toks {
				if t.Kind == iast.KindNumber {
					version = container.VersionNumeralSpan
					break
				}
			}

			flags := container.FlagHasLipi | container.FlagInterleaved
			if vedic {
				flags |= container.FlagVedic
			}
			h := container.Header{Version: version, Flags: flags}
			chunks := []container.Chunk{{Type: container.ChunkPhon, Payload: payload}}
			data := container.EncodeFile(h, chunks)

			if err := writeOutput(out, data); err != nil {
				return err
			}
			if out != "" && out != "-" {
				cmd.PrintErrf("wrote %s (%s)\n", out, humanize.Bytes(uint64(len(data))))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input IAST text file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output .slbc file (default stdout)")
	cmd.Flags().BoolVar(&vedic, "vedic", false, "set the VEDIC header flag (accent marks present)")
	return cmd
}
