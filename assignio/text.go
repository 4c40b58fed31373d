package assignio

import (
	"fmt"
	"io"
	"strings"

	"github.com/jamiealquiza/nodemapr/assign"
)

const indent = "  "

// RenderText writes a human-readable partition table, a per-node load
// table, and a balance summary line. The shape is grounded directly in
// original_source::print_partitions (partition -> replicas table, then
// node -> count -> partitions table, then an upper/lower/differ line) and
// in the teacher's printPlannedRelocations indented fmt.Printf style.
func RenderText(w io.Writer, a assign.Assignment, moves assign.Moves, withMoves bool) {
	partitions := a.Partitions()

	fmt.Fprintln(w, "Partition\tNodes")
	fmt.Fprintln(w, "---------\t-----")
	for _, p := range partitions {
		fmt.Fprintf(w, "%9d\t%s\n", p, joinNodes(a[p]))
	}

	loads := a.Loads()
	nodes := a.Nodes()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Node\tLoad\tPartitions")
	fmt.Fprintln(w, "----\t----\t----------")

	var upper int
	lower := -1
	for _, n := range nodes {
		l := loads[n]
		if l > upper {
			upper = l
		}
		if lower == -1 || l < lower {
			lower = l
		}
		fmt.Fprintf(w, "%4s\t%4d\t%s\n", n, l, joinPartitions(partitionsFor(a, n)))
	}
	if lower == -1 {
		lower = 0
	}

	fmt.Fprintf(w, "\nupper: %d, lower: %d, differ: %d\n", upper, lower, upper-lower)

	if !withMoves {
		fmt.Fprintf(w, "\nmoves planned: %d\n", len(moves))
		return
	}

	fmt.Fprintf(w, "\n%smoves planned: %d\n", indent, len(moves))
	for _, m := range moves {
		fmt.Fprintf(w, "%s%sp%d: %s -> %s\n", indent, indent, m.Partition, m.From, m.To)
	}
}

func joinNodes(ns []assign.Node) string {
	strs := make([]string, len(ns))
	for i, n := range ns {
		strs[i] = string(n)
	}
	return strings.Join(strs, ", ")
}

func partitionsFor(a assign.Assignment, n assign.Node) []assign.Partition {
	var out []assign.Partition
	for _, p := range a.Partitions() {
		if containsNode(a[p], n) {
			out = append(out, p)
		}
	}
	return out
}

func containsNode(ns []assign.Node, n assign.Node) bool {
	for _, x := range ns {
		if x == n {
			return true
		}
	}
	return false
}

func joinPartitions(ps []assign.Partition) string {
	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(strs, ", ")
}
