package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/algebra"
	"github.com/abhyagra/slbc/internal/phoneme"
)

func newTransformCmd() *cobra.Command {
	var op, byteArg, byte2Arg string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply a Pāṇinian algebra-kernel operation to one or two phoneme bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseByteArg(byteArg)
			if err != nil {
				return fmt.Errorf("bad --byte value %q: %w", byteArg, err)
			}

			result, err := applyOp(op, b, byte2Arg)
			if err != nil {
				return err
			}

			cmd.Printf("0x%02X", result)
			if phoneme.IsSvara(result) {
				if tok, ok := phoneme.SvaraIAST(result); ok {
					cmd.Printf("  iast=%s", tok)
				}
			} else if phoneme.IsVyanjana(result) {
				if tok, ok := phoneme.VyanjanaIAST(result); ok {
					cmd.Printf("  iast=%s", tok)
				}
			}
			cmd.Println()
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", "", "guna|vrddhi|dirgha|hrasva|savarna-dirgha|jastva|toggle-voice|toggle-aspiration|make-nasal|homorganic-nasal|samprasarana")
	cmd.Flags().StringVar(&byteArg, "byte", "", "the operand byte, e.g. 0x44")
	cmd.Flags().StringVar(&byte2Arg, "byte2", "", "the second operand byte, for savarna-dirgha")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.MarkFlagRequired("byte")
	return cmd
}

// applyOp dispatches to the algebra kernel, recovering the panic a
// violated DomainError precondition raises (spec.md §7: the kernel
// surfaces violations loudly, as a panic, not a returned error) and
// reporting it to the CLI caller as an ordinary user-facing error.
func applyOp(op string, b byte, byte2Arg string) (result byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform %s: %v", op, r)
		}
	}()

	switch op {
	case "guna":
		return algebra.Guna(b), nil
	case "vrddhi":
		return algebra.Vrddhi(b), nil
	case "dirgha":
		return algebra.Dirgha(b), nil
	case "hrasva":
		return algebra.Hrasva(b), nil
	case "savarna-dirgha":
		b2, perr := parseByteArg(byte2Arg)
		if perr != nil {
			return 0, fmt.Errorf("savarna-dirgha requires --byte2: %w", perr)
		}
		return algebra.SavarnaDirgha(b, b2), nil
	case "jastva":
		return algebra.Jastva(b), nil
	case "toggle-voice":
		return algebra.ToggleVoice(b), nil
	case "toggle-aspiration":
		return algebra.ToggleAspiration(b), nil
	case "make-nasal":
		return algebra.MakeNasal(b), nil
	case "homorganic-nasal":
		return algebra.HomorganicNasalFor(b), nil
	case "samprasarana":
		return algebra.SamprasaranaToSvara(b), nil
	default:
		return 0, fmt.Errorf("unknown --op %q", op)
	}
}
