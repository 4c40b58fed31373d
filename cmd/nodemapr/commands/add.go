package commands

import (
	"github.com/spf13/cobra"

	"github.com/jamiealquiza/nodemapr/assign"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one or more nodes and let boundary balancing migrate replicas onto them",
	Run:   runAdd,
}

func init() {
	addCmd.Flags().String("nodes", "", "comma-separated node names to add")
	addCmd.Flags().String("input", "-", "assignment input file, or - for standard input")

	addCmd.MarkFlagRequired("nodes")
}

func runAdd(cmd *cobra.Command, _ []string) {
	log := verboseLogger(cmd)

	nodesFlag, _ := cmd.Flags().GetString("nodes")
	inputPath, _ := cmd.Flags().GetString("input")

	newNodes := parseNodes(nodesFlag)
	a := readAssignment(inputPath)

	log.WithFields(map[string]interface{}{
		"adding": len(newNodes),
	}).Debug("nodemapr: adding nodes")

	result, moves, err := assign.Add(a, newNodes)
	if err != nil {
		die("%s", err)
	}

	log.WithFields(map[string]interface{}{
		"moves": len(moves),
	}).Debug("nodemapr: boundary balancing complete")

	renderResult(cmd, result, moves)
}
