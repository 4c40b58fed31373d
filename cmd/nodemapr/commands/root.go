// Package commands implements the nodemapr CLI collaborator described (but
// not respecified) by spec.md §6: four subcommands -- init, add, remove,
// validate -- with flags for partitions, replication factor, a
// comma-separated node list, an input file (or "-" for standard input),
// an output format, and a toggle for including the moves list in JSON
// output. None of this package is part of the engine's contract; it only
// wires the pure assign package to a shell, the way the teacher's
// cmd/topicmappr/commands package wires kafkazk to cobra.
package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const indent = "  "

// RootCmd is the entry point Execute()'d by main.
var RootCmd = &cobra.Command{
	Use:   "nodemapr",
	Short: "Compute and mutate replicated partition-to-node assignments",
	Long: "nodemapr computes and mutates a replicated partition-to-node\n" +
		"assignment for a sharded cluster, emitting an ordered list of\n" +
		"replica relocations after every mutation.",
}

func init() {
	RootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	RootCmd.PersistentFlags().Bool("with-moves", false, "include the moves list in json output")
	RootCmd.PersistentFlags().Bool("verbose", false, "log operational diagnostics to stderr")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute runs the root command, exiting non-zero on any error, matching
// the teacher's os.Exit(1)-on-failure house style.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s[ERROR] %s\n", indent, err)
		os.Exit(1)
	}
}

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s[ERROR] %s\n", indent, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func verboseLogger(cmd *cobra.Command) *logrus.Logger {
	v, _ := cmd.Flags().GetBool("verbose")

	l := logrus.New()
	l.Out = os.Stderr
	if v {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
