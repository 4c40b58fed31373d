package assign

import (
	"errors"
	"fmt"
)

// Kind classifies the way an engine operation can fail. The kind is part of
// the contract; the message text is not.
type Kind int

const (
	_ Kind = iota
	// InvalidConfig marks an impossible (nodes, N, R) combination supplied
	// to Init.
	InvalidConfig
	// InvalidRequest marks a malformed request: the node to remove is
	// absent, the input is empty, or duplicate nodes were supplied.
	InvalidRequest
	// InsufficientNodes marks a Remove that would leave fewer than R
	// distinct nodes.
	InsufficientNodes
	// InvariantViolation marks an externally supplied assignment that
	// fails Validate.
	InvariantViolation
	// Conflict marks an Add whose node set overlaps the existing
	// assignment.
	Conflict
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidRequest:
		return "InvalidRequest"
	case InsufficientNodes:
		return "InsufficientNodes"
	case InvariantViolation:
		return "InvariantViolation"
	case Conflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// Error is returned by every engine operation that fails a precondition or
// an invariant check. No operation partially mutates on failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func errorf(op string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
