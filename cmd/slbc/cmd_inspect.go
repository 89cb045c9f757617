package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/container"
	"github.com/abhyagra/slbc/internal/phoneme"
)

func newInspectCmd() *cobra.Command {
	var byteArg, fromHex string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Classify a single phoneme byte, or parse a container header from hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case byteArg != "":
				return inspectByte(cmd, byteArg)
			case fromHex != "":
				return inspectHeader(cmd, fromHex)
			default:
				return fmt.Errorf("inspect requires --byte or --from-hex")
			}
		},
	}
	cmd.Flags().StringVar(&byteArg, "byte", "", "a byte literal to classify, e.g. 0x40")
	cmd.Flags().StringVar(&fromHex, "from-hex", "", "hex-encoded container bytes to parse a header from")
	return cmd
}

func inspectByte(cmd *cobra.Command, arg string) error {
	b, err := parseByteArg(arg)
	if err != nil {
		return fmt.Errorf("bad --byte value %q: %w", arg, err)
	}
	class := phoneme.Classify(b)
	cmd.Printf("0x%02X  class=%s", b, class)
	if phoneme.IsSvara(b) {
		if tok, ok := phoneme.SvaraIAST(b); ok {
			cmd.Printf("  iast=%s  Q=%d A=%d S=%d G=%d",
				tok, phoneme.QuantityOf(b), phoneme.AccentOf(b), phoneme.SeriesOf(b), phoneme.GradeOf(b))
		}
	} else if phoneme.IsVyanjana(b) {
		if tok, ok := phoneme.VyanjanaIAST(b); ok {
			cmd.Printf("  iast=%s  PLACE=%d COLUMN=%d", tok, phoneme.PlaceOf(b), phoneme.ColumnOf(b))
		}
	}
	cmd.Println()
	return nil
}

func inspectHeader(cmd *cobra.Command, hexStr string) error {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return fmt.Errorf("bad --from-hex value: %w", err)
	}
	h, next, err := container.ParseHeader(data)
	if err != nil {
		return err
	}
	cmd.Printf("version=% X flags=0x%02X mode=%v has_lipi=%v has_meta=%v interleaved=%v vedic=%v vya=%v ext_header_len=%d next_chunk_offset=%d\n",
		h.Version, h.Flags, h.Mode(), h.HasLipi(), h.HasMeta(), h.Interleaved(), h.Vedic(), h.Vya(), len(h.ExtHeader), next)
	return nil
}
