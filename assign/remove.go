package assign

import (
	"sort"
	"strings"
)

// Remove reassigns every replica held by x onto surviving nodes, restoring
// I1-I4, and returns the resulting assignment plus the ordered moves needed
// to reach it (spec.md §4.2).
func Remove(a Assignment, x Node, r int) (Assignment, Moves, error) {
	const op = "assign.Remove"

	if !a.Contains(x) {
		return nil, nil, errorf(op, InvalidRequest, "node %q is not present in the assignment", x)
	}

	allNodes := a.Nodes()
	if len(allNodes) <= r {
		return nil, nil, errorf(op, InsufficientNodes, "removing %q would leave fewer than %d distinct nodes", x, r)
	}

	working := a.Copy()

	// Phase A — collect. Record the orphaned partition ids, in ascending
	// order, and the index x holds in each one's replica list. x stays in
	// place in working until Phase B overwrites it, so the move emitted
	// for a partition always matches the slot Moves.Apply will rewrite.
	var orphanPartitions []Partition
	orphanIndex := make(map[Partition]int)
	for _, p := range working.Partitions() {
		ns := working[p]
		for i, n := range ns {
			if n == x {
				orphanPartitions = append(orphanPartitions, p)
				orphanIndex[p] = i
				break
			}
		}
	}

	survivors := make([]Node, 0, len(allNodes)-1)
	for _, n := range allNodes {
		if n != x {
			survivors = append(survivors, n)
		}
	}

	loads := make(map[Node]int, len(survivors))
	for _, n := range survivors {
		loads[n] = 0
	}
	for _, ns := range working {
		for _, n := range ns {
			if n != x {
				loads[n]++
			}
		}
	}

	// candidates(p): survivors not already on p's replica list (x itself is
	// never a survivor, so its still-present slot doesn't affect this).
	candidatesFor := func(p Partition) []Node {
		have := working[p]
		out := make([]Node, 0, len(survivors))
		for _, n := range survivors {
			if !hasNode(have, n) {
				out = append(out, n)
			}
		}
		return out
	}

	orphanCandidates := make(map[Partition][]Node, len(orphanPartitions))
	for _, p := range orphanPartitions {
		orphanCandidates[p] = candidatesFor(p)
	}

	// deg(n, x): the number of orphaned partitions on which surviving
	// replica n still sits, computed once over the (still x-inclusive)
	// replica lists.
	deg := make(map[Node]int)
	for _, p := range orphanPartitions {
		for _, n := range working[p] {
			if n == x {
				continue
			}
			deg[n]++
		}
	}

	// Group orphans by the identity of their candidate set (candidate
	// lists are already in the same sorted order for equal sets, since
	// they're built by filtering the same sorted survivors slice).
	type group struct {
		candidates []Node
		members    []Partition
		pressure   int
	}

	groupsByKey := make(map[string]*group)
	var order []string

	for _, p := range orphanPartitions {
		cands := orphanCandidates[p]
		key := candidateKey(cands)
		g, ok := groupsByKey[key]
		if !ok {
			g = &group{candidates: cands}
			groupsByKey[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, p)
	}

	for _, key := range order {
		g := groupsByKey[key]
		var pressure int
		for _, p := range g.members {
			for _, n := range working[p] {
				pressure += deg[n]
			}
		}
		g.pressure = pressure
	}

	groups := make([]*group, 0, len(groupsByKey))
	for _, key := range order {
		groups = append(groups, groupsByKey[key])
	}
	// Descending pressure; the stable sort keeps tied groups in
	// first-appearance order (by their lowest orphaned partition id), so
	// the order is deterministic (spec.md §9's "stable ordering everywhere").
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].pressure > groups[j].pressure
	})

	var moves Moves

	// Phase B — grouped fill.
	for _, g := range groups {
		remaining := append([]Partition(nil), g.members...)

		candLoads := make(map[Node]int, len(g.candidates))
		for _, n := range g.candidates {
			candLoads[n] = loads[n]
		}
		idx := newLoadIndex(candLoads)

		for len(remaining) > 0 {
			lo := idx.min()
			hi := idx.max()

			if hi.load == lo.load {
				// Cycle mode: round-robin the remaining orphans over the
				// candidates in stable (sorted) order.
				sorted := append([]Node(nil), g.candidates...)
				sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

				for i, p := range remaining {
					chosen := sorted[i%len(sorted)]
					working[p][orphanIndex[p]] = chosen
					moves = append(moves, Move{Partition: p, From: x, To: chosen})
					loads[chosen]++
				}
				remaining = nil
				break
			}

			p := remaining[0]
			remaining = remaining[1:]

			chosen := lo.node
			working[p][orphanIndex[p]] = chosen
			moves = append(moves, Move{Partition: p, From: x, To: chosen})
			loads[chosen]++
			idx.bump(chosen, lo.load, 1)
		}

		// Loads for groups not yet processed are read fresh from `loads`
		// at the top of their own iteration, which already reflects every
		// placement made by prior groups.
	}

	// Phase C — boundary balance.
	balanced, balanceMoves := balanceBoundary(working, working.Loads())
	moves = append(moves, balanceMoves...)

	return balanced, moves, nil
}

// candidateKey canonicalizes a candidate set (already sorted ascending) into
// a comparable string, so two orphans with the identical candidate set
// collide into the same group.
func candidateKey(cands []Node) string {
	strs := make([]string, len(cands))
	for i, n := range cands {
		strs[i] = string(n)
	}
	return strings.Join(strs, "\x00")
}
