package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/emit"
	"github.com/abhyagra/slbc/internal/stream"
)

func newDecodeCmd() *cobra.Command {
	var in, out, to string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a .slbc container back to text",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			f, err := container.DecodeFile(raw)
			if err != nil {
				return err
			}

			var events []stream.Event
			for _, c := range f.Chunks {
				switch c.Type {
				case container.ChunkPhon, container.ChunkBha, container.ChunkLipi:
					ev, err := stream.Decode(c.Payload)
					if err != nil {
						return err
					}
					events = append(events, ev...)
				}
			}

			var text string
			switch to {
			case "", "iast":
				text, err = emit.IAST(events)
			case "devanagari":
				text, err = emit.Devanagari(events)
			default:
				return fmt.Errorf("unknown --to target %q: want iast or devanagari", to)
			}
			if err != nil {
				return err
			}
			return writeOutput(out, []byte(text+"\n"))
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input .slbc file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output text file (default stdout)")
	cmd.Flags().StringVar(&to, "to", "iast", "output script: iast|devanagari")
	return cmd
}
