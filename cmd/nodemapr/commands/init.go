package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamiealquiza/nodemapr/assign"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Build an initial round-robin partition-to-node assignment",
	Run:   runInit,
}

func init() {
	initCmd.Flags().Int("partitions", 0, "number of partitions")
	initCmd.Flags().Int("replication-factor", 0, "replication factor")
	initCmd.Flags().String("nodes", "", "comma-separated node names")
	initCmd.Flags().Int("base", 1, "first partition id (0 or 1)")

	initCmd.MarkFlagRequired("partitions")
	initCmd.MarkFlagRequired("replication-factor")
	initCmd.MarkFlagRequired("nodes")
}

func runInit(cmd *cobra.Command, _ []string) {
	log := verboseLogger(cmd)

	n, _ := cmd.Flags().GetInt("partitions")
	r, _ := cmd.Flags().GetInt("replication-factor")
	nodesFlag, _ := cmd.Flags().GetString("nodes")
	base, _ := cmd.Flags().GetInt("base")

	nodes := parseNodes(nodesFlag)

	log.WithFields(map[string]interface{}{
		"partitions": n,
		"rf":         r,
		"nodes":      len(nodes),
		"base":       base,
	}).Debug("nodemapr: initializing assignment")

	result, moves, err := assign.Init(nodes, n, r, base)
	if err != nil {
		die("%s", err)
	}

	renderResult(cmd, result, moves)
}

func parseNodes(flag string) []assign.Node {
	parts := strings.Split(flag, ",")
	out := make([]assign.Node, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, assign.Node(p))
	}
	return out
}
