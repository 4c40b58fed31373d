package assign

// Add introduces the given new, distinct, not-already-present nodes at load
// zero and lets the boundary balancer alone migrate replicas onto them
// (spec.md §4.3). Every emitted move has the form (p, upper, lower); Add
// never synthesizes a "no source" move (spec.md §9).
func Add(a Assignment, newNodes []Node) (Assignment, Moves, error) {
	const op = "assign.Add"

	if len(newNodes) == 0 {
		return nil, nil, errorf(op, InvalidRequest, "no nodes supplied")
	}

	existing := make(map[Node]struct{})
	for _, n := range a.Nodes() {
		existing[n] = struct{}{}
	}

	seen := make(map[Node]struct{}, len(newNodes))
	for _, n := range newNodes {
		if _, dup := seen[n]; dup {
			return nil, nil, errorf(op, InvalidRequest, "duplicate node %q in input", n)
		}
		seen[n] = struct{}{}

		if _, ok := existing[n]; ok {
			return nil, nil, errorf(op, Conflict, "node %q is already present in the assignment", n)
		}
	}

	working := a.Copy()
	loads := working.Loads()
	for n := range seen {
		loads[n] = 0
	}

	balanced, moves := balanceBoundary(working, loads)
	return balanced, moves, nil
}
