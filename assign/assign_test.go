package assign

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newMockAssignment() Assignment {
	return Assignment{
		0: {"a", "b", "c"},
		1: {"b", "c", "a"},
		2: {"c", "a", "b"},
	}
}

func TestAssignmentCopyIsIndependent(t *testing.T) {
	a := newMockAssignment()
	cp := a.Copy()

	cp[0][0] = "z"

	if a[0][0] == "z" {
		t.Errorf("Copy shares underlying storage with the original")
	}
	if !cmp.Equal(a, newMockAssignment()) {
		t.Errorf("original assignment mutated via its copy")
	}
}

func TestAssignmentPartitionsSorted(t *testing.T) {
	a := Assignment{5: {"a"}, 1: {"a"}, 3: {"a"}}
	got := a.Partitions()
	expected := []Partition{1, 3, 5}

	if !cmp.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAssignmentNodesSorted(t *testing.T) {
	a := newMockAssignment()
	got := a.Nodes()
	expected := []Node{"a", "b", "c"}

	if !cmp.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAssignmentLoads(t *testing.T) {
	a := newMockAssignment()
	loads := a.Loads()

	for _, n := range []Node{"a", "b", "c"} {
		if loads[n] != 3 {
			t.Errorf("expected load 3 for %s, got %d", n, loads[n])
		}
	}
}

func TestAssignmentContains(t *testing.T) {
	a := newMockAssignment()

	if !a.Contains("a") {
		t.Errorf("expected Contains(a) == true")
	}
	if a.Contains("z") {
		t.Errorf("expected Contains(z) == false")
	}
}

func TestAssignmentEqual(t *testing.T) {
	a := newMockAssignment()
	b := a.Copy()

	if !a.Equal(b) {
		t.Errorf("expected equal assignments to compare equal")
	}

	b[0][0] = "z"
	if a.Equal(b) {
		t.Errorf("expected mutated assignment to compare unequal")
	}
}

func TestMovesApply(t *testing.T) {
	a := newMockAssignment()
	moves := Moves{
		{Partition: 0, From: "a", To: "z"},
		{Partition: 1, From: "b", To: "z"},
	}

	got := moves.Apply(a)

	if !hasNode(got[0], "z") || hasNode(got[0], "a") {
		t.Errorf("partition 0 not updated as expected: %v", got[0])
	}
	if !hasNode(got[1], "z") || hasNode(got[1], "b") {
		t.Errorf("partition 1 not updated as expected: %v", got[1])
	}
	// Untouched partitions are unaffected.
	if !cmp.Equal(got[2], a[2]) {
		t.Errorf("partition 2 unexpectedly changed: %v", got[2])
	}
}
