package assign

import "github.com/google/btree"

// nodeLoad pairs a node with its current replica count. Ordering is by load
// ascending, then by node name ascending, matching the tie-break discipline
// spec.md §4.4 requires throughout the balancer.
type nodeLoad struct {
	node Node
	load int
}

func (l nodeLoad) Less(than btree.Item) bool {
	o := than.(nodeLoad)
	if l.load != o.load {
		return l.load < o.load
	}
	return l.node < o.node
}

// loadIndex is a btree-ordered view over a set of nodes' loads, giving
// deterministic, tie-broken access to the least- and most-loaded node. It
// mirrors the planByNumPartitions btree kept by franz-go's sticky
// assignor (internal/sticky), generalized from "fewest partitions" to
// "lowest replica load".
type loadIndex struct {
	tree *btree.BTree
}

// newLoadIndex builds an index over the given node->load map. Every node
// that should be eligible for selection — including nodes injected at load
// zero, such as newly added ones — must appear as a key.
func newLoadIndex(loads map[Node]int) *loadIndex {
	t := btree.New(8)
	for n, l := range loads {
		t.ReplaceOrInsert(nodeLoad{node: n, load: l})
	}
	return &loadIndex{tree: t}
}

func (li *loadIndex) len() int { return li.tree.Len() }

// min returns the node with the lowest load, ties broken by name ascending.
func (li *loadIndex) min() nodeLoad {
	return li.tree.Min().(nodeLoad)
}

// max returns the node with the highest load, ties broken by name
// ascending (NOT the btree's natural maximum, which would break ties by
// name descending).
func (li *loadIndex) max() nodeLoad {
	top := li.tree.Max().(nodeLoad)
	var first nodeLoad
	li.tree.AscendGreaterOrEqual(nodeLoad{load: top.load, node: ""}, func(item btree.Item) bool {
		first = item.(nodeLoad)
		return false
	})
	return first
}

// bump moves n from its known current load to load+delta.
func (li *loadIndex) bump(n Node, load, delta int) {
	li.tree.Delete(nodeLoad{node: n, load: load})
	li.tree.ReplaceOrInsert(nodeLoad{node: n, load: load + delta})
}
