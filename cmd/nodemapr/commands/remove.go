package commands

import (
	"github.com/spf13/cobra"

	"github.com/jamiealquiza/nodemapr/assign"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a node, refill its orphaned replicas, and boundary balance the result",
	Run:   runRemove,
}

func init() {
	removeCmd.Flags().String("node", "", "node to remove")
	removeCmd.Flags().String("input", "-", "assignment input file, or - for standard input")

	removeCmd.MarkFlagRequired("node")
}

func runRemove(cmd *cobra.Command, _ []string) {
	log := verboseLogger(cmd)

	node, _ := cmd.Flags().GetString("node")
	inputPath, _ := cmd.Flags().GetString("input")

	a := readAssignment(inputPath)
	r := replicationFactorOf(a)

	log.WithFields(map[string]interface{}{
		"node": node,
		"rf":   r,
	}).Debug("nodemapr: removing node")

	result, moves, err := assign.Remove(a, assign.Node(node), r)
	if err != nil {
		dumpRejected(cmd, a)
		die("%s", err)
	}

	log.WithFields(map[string]interface{}{
		"moves": len(moves),
	}).Debug("nodemapr: refill and boundary balancing complete")

	renderResult(cmd, result, moves)
}
