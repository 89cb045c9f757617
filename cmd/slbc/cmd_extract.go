package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/emit"
	"github.com/abhyagra/slbc/internal/extract"
)

func newExtractCmd() *cobra.Command {
	var in, out, to, modeFlag string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract text from a .slbc container under a given mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(in)
			if err != nil {
				return err
			}
			f, err := container.DecodeFile(raw)
			if err != nil {
				return err
			}

			var mode extract.Mode
			switch modeFlag {
			case "patha", "":
				mode = extract.ModePatha
			case "bhasha-only":
				mode = extract.ModeBhashaOnly
			case "vyakhya":
				mode = extract.ModeVyakhya
			default:
				return fmt.Errorf("unknown --mode %q: want patha|bhasha-only|vyakhya", modeFlag)
			}

			res, err := extract.Extract(f, mode)
			if err != nil {
				return err
			}

			var text string
			switch to {
			case "", "iast":
				text, err = emit.IAST(res.Events)
			case "devanagari":
				text, err = emit.Devanagari(res.Events)
			default:
				return fmt.Errorf("unknown --to target %q: want iast or devanagari", to)
			}
			if err != nil {
				return err
			}
			if err := writeOutput(out, []byte(text+"\n")); err != nil {
				return err
			}
			if mode == extract.ModeVyakhya {
				resolved, sess, err := extract.ResolveAnnotations(res, os.ReadFile)
				if err != nil {
					return err
				}
				cmd.PrintErrf("session %s: retained %d DICT chunk(s), resolved %d ANVY entr(y/ies)\n",
					sess.ID, len(res.Dict), len(resolved))
				for _, re := range resolved {
					if re.RegistryRef != 0 {
						cmd.PrintErrf("  span [%d,+%d): %s (%s %d -> %s)\n",
							re.SpanStart, re.SpanLength, re.Text, re.RegistryKind, re.RegistryRef, re.RegistryIAST)
					} else {
						cmd.PrintErrf("  span [%d,+%d): %s\n", re.SpanStart, re.SpanLength, re.Text)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input .slbc file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output text file (default stdout)")
	cmd.Flags().StringVar(&to, "to", "iast", "output script: iast|devanagari")
	cmd.Flags().StringVar(&modeFlag, "mode", "patha", "extraction mode: patha|bhasha-only|vyakhya")
	return cmd
}
