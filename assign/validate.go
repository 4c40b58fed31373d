package assign

import "math"

// Validate checks a against the declared partition count n and replication
// factor r (spec.md §4.5). It reports the first violation found and does
// not attempt repair.
func Validate(a Assignment, n, r int) error {
	const op = "assign.Validate"

	if len(a) == 0 {
		return errorf(op, InvariantViolation, "assignment is empty")
	}

	base := -1
	for p := range a {
		if base == -1 || int(p) < base {
			base = int(p)
		}
	}
	if base != 0 && base != 1 {
		return errorf(op, InvariantViolation, "minimum partition id %d is neither 0 nor 1", base)
	}

	if len(a) != n {
		return errorf(op, InvariantViolation, "assignment has %d partitions, want %d", len(a), n)
	}

	for i := 0; i < n; i++ {
		p := Partition(base + i)

		ns, ok := a[p]
		if !ok {
			return errorf(op, InvariantViolation, "missing partition %d", p)
		}
		if len(ns) != r {
			return errorf(op, InvariantViolation, "partition %d has %d replicas, want %d", p, len(ns), r)
		}

		seen := make(map[Node]struct{}, len(ns))
		for _, node := range ns {
			if _, dup := seen[node]; dup {
				return errorf(op, InvariantViolation, "partition %d has duplicate replica %q", p, node)
			}
			seen[node] = struct{}{}
		}
	}

	nodes := a.Nodes()
	if len(nodes) == 0 {
		return errorf(op, InvariantViolation, "assignment has no nodes")
	}

	avg := float64(n*r) / float64(len(nodes))
	lo := int(math.Floor(avg))
	hi := int(math.Ceil(avg))

	loads := a.Loads()
	for _, node := range nodes {
		l := loads[node]
		if l < lo || l > hi {
			return errorf(op, InvariantViolation, "node %q has load %d, want between %d and %d", node, l, lo, hi)
		}
	}

	return nil
}
