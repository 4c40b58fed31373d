package assign

import "testing"

func TestBalanceBoundaryConverges(t *testing.T) {
	a := Assignment{
		0: {"a", "b"},
		1: {"a", "b"},
		2: {"a", "b"},
		3: {"a", "c"},
	}

	balanced, moves := balanceBoundary(a, a.Loads())

	loads := balanced.Loads()
	min, max := loads["a"], loads["a"]
	for _, l := range loads {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	if max-min > 1 {
		t.Errorf("expected max-min <= 1 after balancing, got max=%d min=%d", max, min)
	}

	// Every emitted move must be reflected when replayed.
	replayed := moves.Apply(a)
	if !replayed.Equal(balanced) {
		t.Errorf("applying moves to input did not reproduce the balanced result")
	}
}

func TestBalanceBoundaryNoOpWhenAlreadyBalanced(t *testing.T) {
	a := Assignment{
		0: {"a", "b"},
		1: {"b", "c"},
		2: {"c", "a"},
	}

	balanced, moves := balanceBoundary(a, a.Loads())

	if len(moves) != 0 {
		t.Errorf("expected no moves for an already-balanced assignment, got %d", len(moves))
	}
	if !balanced.Equal(a) {
		t.Errorf("expected assignment unchanged")
	}
}

func TestBalanceBoundaryHonorsInjectedZeroLoadNodes(t *testing.T) {
	a := Assignment{
		0: {"a", "b"},
		1: {"a", "b"},
		2: {"a", "b"},
		3: {"a", "b"},
	}
	loads := a.Loads()
	loads["c"] = 0

	balanced, moves := balanceBoundary(a, loads)

	if balanced.Load("c") == 0 {
		t.Errorf("expected the injected node to receive load, got 0")
	}
	if len(moves) == 0 {
		t.Errorf("expected at least one move onto the injected node")
	}
	for _, m := range moves {
		if m.From == "c" {
			t.Errorf("injected node must never be a move source: %+v", m)
		}
	}
}

func TestLoadIndexTieBreaksByNameAscendingForBoth(t *testing.T) {
	idx := newLoadIndex(map[Node]int{"z": 5, "a": 5, "m": 1, "b": 1})

	lo := idx.min()
	if lo.node != "b" {
		t.Errorf("expected min tie-break to prefer %q, got %q", "b", lo.node)
	}

	hi := idx.max()
	if hi.node != "a" {
		t.Errorf("expected max tie-break to prefer %q ascending, got %q", "a", hi.node)
	}
}
