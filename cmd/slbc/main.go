// Command slbc is the reference CLI for the Sanskrit phoneme-first
// binary codec: encode/decode/extract/inspect/transform/roundtrip/
// annotate and the registry compiler, wired to the same internal
// packages a service embedding this codec would use directly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhyagra/slbc/internal/slbcerr"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slbc:", err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slbc",
		Short:         "Sanskrit Linguistic Binary Codec",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newExtractCmd(),
		newInspectCmd(),
		newTransformCmd(),
		newRoundtripCmd(),
		newAnnotateCmd(),
		newRegistryCmd(),
	)
	return root
}

// exitCodeFor maps an error to the exit codes of spec.md §6: 0 success
// (handled by cobra returning nil), 1 user error, 2 format error, 3 I/O
// error.
func exitCodeFor(err error) int {
	var se *slbcerr.Error
	if asSlbcErr(err, &se) {
		switch se.Kind {
		case slbcerr.KindInputEncoding:
			return 1
		case slbcerr.KindContainer, slbcerr.KindSpan, slbcerr.KindRegistry, slbcerr.KindInvariant:
			return 2
		}
	}
	for e := err; e != nil; {
		if _, ok := e.(*os.PathError); ok {
			return 3
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return 1
}

// asSlbcErr unwraps err looking for a *slbcerr.Error, the way the
// standard library's errors.As would, without pulling in the extra
// import for a single call site.
func asSlbcErr(err error, target **slbcerr.Error) bool {
	for err != nil {
		if se, ok := err.(*slbcerr.Error); ok {
			*target = se
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
