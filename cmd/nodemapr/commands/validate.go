package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamiealquiza/nodemapr/assign"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an assignment against I1-I4 without attempting repair",
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().Int("partitions", 0, "expected number of partitions")
	validateCmd.Flags().Int("replication-factor", 0, "expected replication factor")
	validateCmd.Flags().String("input", "-", "assignment input file, or - for standard input")

	validateCmd.MarkFlagRequired("partitions")
	validateCmd.MarkFlagRequired("replication-factor")
}

func runValidate(cmd *cobra.Command, _ []string) {
	n, _ := cmd.Flags().GetInt("partitions")
	r, _ := cmd.Flags().GetInt("replication-factor")
	inputPath, _ := cmd.Flags().GetString("input")

	a := readAssignment(inputPath)

	if err := assign.Validate(a, n, r); err != nil {
		dumpRejected(cmd, a)
		die("%s", err)
	}

	fmt.Fprintf(os.Stdout, "%sok: assignment satisfies I1-I4\n", indent)
}
