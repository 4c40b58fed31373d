// Package assign implements a pure, in-memory partition-to-node rebalancing
// engine for a replicated, sharded cluster. It never performs I/O; every
// operation consumes an Assignment value and returns a new one plus the
// ordered list of replica relocations needed to get there.
package assign

import "sort"

// Node is a replica host, identified by an opaque name. Equality and
// ordering are lexicographic by name.
type Node string

// Partition is a logical shard, identified by a non-negative integer.
type Partition int

// Assignment maps every partition to its ordered replica list. The replica
// order is semantically irrelevant but preserved across operations for
// stable output.
type Assignment map[Partition][]Node

// New returns an empty Assignment.
func New() Assignment {
	return Assignment{}
}

// Copy returns a deep copy of a.
func (a Assignment) Copy() Assignment {
	cp := make(Assignment, len(a))
	for p, ns := range a {
		dup := make([]Node, len(ns))
		copy(dup, ns)
		cp[p] = dup
	}
	return cp
}

// Partitions returns the partition ids present in a, sorted ascending.
func (a Assignment) Partitions() []Partition {
	ps := make([]Partition, 0, len(a))
	for p := range a {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// Nodes returns the distinct nodes appearing anywhere in a, sorted ascending
// by name.
func (a Assignment) Nodes() []Node {
	set := make(map[Node]struct{})
	for _, ns := range a {
		for _, n := range ns {
			set[n] = struct{}{}
		}
	}
	out := make([]Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Loads returns, for every node appearing in a, the count of partitions
// whose replica list contains it.
func (a Assignment) Loads() map[Node]int {
	loads := make(map[Node]int)
	for _, ns := range a {
		for _, n := range ns {
			loads[n]++
		}
	}
	return loads
}

// Load returns the count of partitions in a whose replica list contains n.
func (a Assignment) Load(n Node) int {
	var c int
	for _, ns := range a {
		if hasNode(ns, n) {
			c++
		}
	}
	return c
}

// Contains reports whether n appears in any replica list in a.
func (a Assignment) Contains(n Node) bool {
	for _, ns := range a {
		if hasNode(ns, n) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold identical partition keys, each mapped
// to element-wise identical (order-sensitive) replica lists.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for p, ns := range a {
		bs, ok := b[p]
		if !ok || len(ns) != len(bs) {
			return false
		}
		for i := range ns {
			if ns[i] != bs[i] {
				return false
			}
		}
	}
	return true
}

func hasNode(ns []Node, n Node) bool {
	for _, x := range ns {
		if x == n {
			return true
		}
	}
	return false
}
