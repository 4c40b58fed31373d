package commands

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/jamiealquiza/nodemapr/assign"
	"github.com/jamiealquiza/nodemapr/assignio"
)

// readAssignment reads the assignment at path, or from standard input when
// path is "-", per spec.md §6.
func readAssignment(path string) assign.Assignment {
	var f *os.File

	if path == "-" || path == "" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			die("could not open input %q: %s", path, err)
		}
		defer f.Close()
	}

	a, err := assignio.Read(f)
	if err != nil {
		die("could not parse assignment: %s", err)
	}

	return a
}

// renderResult writes the assignment and moves in the requested format,
// honoring --with-moves for JSON output and always reporting a move count
// for text output (spec.md §6).
func renderResult(cmd *cobra.Command, a assign.Assignment, moves assign.Moves) {
	format, _ := cmd.Flags().GetString("format")
	withMoves, _ := cmd.Flags().GetBool("with-moves")

	switch format {
	case "json":
		data, err := assignio.EncodeOutput(a, moves, withMoves)
		if err != nil {
			die("could not render output: %s", err)
		}
		fmt.Println(string(data))
	case "text":
		assignio.RenderText(os.Stdout, a, moves, withMoves)
	default:
		die("unknown output format %q (want text or json)", format)
	}
}

// replicationFactorOf infers the replication factor from an arbitrary
// partition in a, since the CLI's on-disk exchange format (spec.md §6)
// carries no separate replication-factor field.
func replicationFactorOf(a assign.Assignment) int {
	for _, p := range a.Partitions() {
		return len(a[p])
	}
	return 0
}

// dumpRejected pretty-prints a rejected assignment to stderr when verbose
// diagnostics are requested, so an operator can see exactly what failed
// validation.
func dumpRejected(cmd *cobra.Command, a assign.Assignment) {
	v, _ := cmd.Flags().GetBool("verbose")
	if !v {
		return
	}
	fmt.Fprintln(os.Stderr, spew.Sdump(a))
}
