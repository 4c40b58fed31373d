package assign

// balanceBoundary iterates, moving one replica at a time from the
// most-loaded node to the least-loaded node, until max(load)-min(load) <= 1
// (spec.md §4.4). loads must contain every node that should participate,
// including ones injected at load zero (new nodes being added).
//
// The source expresses this as tail recursion; an iterative loop is
// equivalent and preferred (spec.md §9).
func balanceBoundary(a Assignment, loads map[Node]int) (Assignment, Moves) {
	working := a.Copy()

	if len(loads) == 0 {
		return working, nil
	}

	idx := newLoadIndex(loads)
	var moves Moves

	for {
		if idx.len() < 2 {
			break
		}

		lo := idx.min()
		hi := idx.max()

		if hi.load-lo.load <= 1 {
			break
		}

		// Find a partition on hi that lo doesn't already hold. One must
		// exist whenever the load gap is >= 2 (spec.md §4.4 step 3): a
		// node carries hi.load partitions and lo holds only lo.load of
		// them at most, and hi.load > lo.load + 1 leaves at least one
		// partition on hi absent from lo.
		var moved bool
		for _, p := range working.Partitions() {
			ns := working[p]
			if !hasNode(ns, hi.node) || hasNode(ns, lo.node) {
				continue
			}

			for i, n := range ns {
				if n == hi.node {
					ns[i] = lo.node
					break
				}
			}
			working[p] = ns

			moves = append(moves, Move{Partition: p, From: hi.node, To: lo.node})
			idx.bump(hi.node, hi.load, -1)
			idx.bump(lo.node, lo.load, 1)
			moved = true
			break
		}

		if !moved {
			// Contradicts the invariant the spec proves; stop rather than
			// loop forever.
			break
		}
	}

	return working, moves
}
