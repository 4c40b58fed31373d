package assign

import (
	"strconv"
	"testing"
)

func eightNodeInit(t *testing.T) Assignment {
	t.Helper()

	var nodes []Node
	for i := 1; i <= 8; i++ {
		nodes = append(nodes, Node(strconv.Itoa(i)))
	}

	a, _, err := Init(nodes, 60, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error building fixture: %s", err)
	}
	return a
}

func TestRemoveSingleNode(t *testing.T) {
	a := eightNodeInit(t)
	before := a.Load("2")

	result, moves, err := Remove(a, "2", 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if result.Contains("2") {
		t.Errorf("expected node 2 absent from the result (P4)")
	}

	if err := Validate(result, 60, 3); err != nil {
		t.Errorf("result failed validation: %s", err)
	}

	loads := result.Loads()
	for n, l := range loads {
		if l != 25 && l != 26 {
			t.Errorf("expected load 25 or 26 for node %s, got %d", n, l)
		}
	}

	// At minimum, one move must exist per partition that was orphaned;
	// boundary balancing may append more.
	if len(moves) < before {
		t.Errorf("expected at least %d moves (orphans), got %d", before, len(moves))
	}

	// P6: replaying the moves against the input reproduces the result.
	replayed := moves.Apply(a)
	if !replayed.Equal(result) {
		t.Errorf("applying moves to input did not reproduce the result")
	}
}

func TestRemoveTwiceReachesExactBalance(t *testing.T) {
	a := eightNodeInit(t)

	afterFirst, _, err := Remove(a, "2", 3)
	if err != nil {
		t.Fatalf("unexpected error on first remove: %s", err)
	}

	afterSecond, _, err := Remove(afterFirst, "4", 3)
	if err != nil {
		t.Fatalf("unexpected error on second remove: %s", err)
	}

	if err := Validate(afterSecond, 60, 3); err != nil {
		t.Errorf("result failed validation: %s", err)
	}

	loads := afterSecond.Loads()
	for n, l := range loads {
		if l != 30 {
			t.Errorf("expected exact load 30 for node %s, got %d", n, l)
		}
	}
}

func TestRemoveFailsWhenTooFewNodesRemain(t *testing.T) {
	nodes := []Node{"a", "b", "c"}
	a, _, err := Init(nodes, 6, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, _, err = Remove(a, "a", 3)
	if !IsKind(err, InsufficientNodes) {
		t.Errorf("expected InsufficientNodes, got %v", err)
	}
}

func TestRemoveFailsWhenNodeAbsent(t *testing.T) {
	a := eightNodeInit(t)

	_, _, err := Remove(a, "99", 3)
	if !IsKind(err, InvalidRequest) {
		t.Errorf("expected InvalidRequest, got %v", err)
	}
}

func TestRemoveNeverDuplicatesAReplica(t *testing.T) {
	a := eightNodeInit(t)

	result, _, err := Remove(a, "5", 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for p, ns := range result {
		seen := make(map[Node]struct{}, len(ns))
		for _, n := range ns {
			if _, dup := seen[n]; dup {
				t.Errorf("partition %d has duplicate replica %s", p, n)
			}
			seen[n] = struct{}{}
		}
	}
}

func TestRemoveIsDeterministic(t *testing.T) {
	a := eightNodeInit(t)

	r1, m1, err := Remove(a, "3", 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	r2, m2, err := Remove(a, "3", 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !r1.Equal(r2) {
		t.Errorf("two Remove calls on equal inputs produced different assignments")
	}
	if len(m1) != len(m2) {
		t.Fatalf("two Remove calls produced different move counts: %d vs %d", len(m1), len(m2))
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Errorf("move %d differs: %+v vs %+v", i, m1[i], m2[i])
		}
	}
}
