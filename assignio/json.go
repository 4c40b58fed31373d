// Package assignio implements the external collaborator surfaces spec.md §6
// describes but does not respecify: the JSON assignment exchange format and
// text rendering. Nothing in this package is part of the engine's contract;
// it exists to let cmd/nodemapr read and write assignments the way the
// teacher's kafkazk package reads and writes topic maps
// (PartitionMapFromString / WriteMap), generalized from Kafka topic,
// partition, broker-id triples to this spec's node/partition model.
package assignio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jamiealquiza/nodemapr/assign"
)

// ParseError wraps a malformed-input failure. Per spec.md §7, parse
// failures are raised by collaborators, never by the core engine.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: ParseError: %s", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// wireAssignment is the JSON exchange shape spec.md §6 describes: string
// partition ids mapping to an array of node names, e.g.
// {"1": ["a","b","c"], "2": ["b","c","a"]}.
type wireAssignment map[string][]string

func toWire(a assign.Assignment) wireAssignment {
	w := make(wireAssignment, len(a))
	for p, ns := range a {
		strs := make([]string, len(ns))
		for i, n := range ns {
			strs[i] = string(n)
		}
		w[strconv.Itoa(int(p))] = strs
	}
	return w
}

func fromWire(w wireAssignment) (assign.Assignment, error) {
	out := make(assign.Assignment, len(w))
	for ps, ns := range w {
		p, err := strconv.Atoi(ps)
		if err != nil {
			return nil, fmt.Errorf("partition id %q is not an integer", ps)
		}
		nodes := make([]assign.Node, len(ns))
		for i, n := range ns {
			nodes[i] = assign.Node(n)
		}
		out[assign.Partition(p)] = nodes
	}
	return out, nil
}

// Encode renders a in the JSON exchange format.
func Encode(a assign.Assignment) ([]byte, error) {
	return json.MarshalIndent(toWire(a), "", "  ")
}

// Decode parses the JSON exchange format into an Assignment.
func Decode(data []byte) (assign.Assignment, error) {
	const op = "assignio.Decode"

	var w wireAssignment
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}

	out, err := fromWire(w)
	if err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return out, nil
}

// Read decodes an assignment from r, e.g. an open file or os.Stdin for the
// "-" input marker spec.md §6 describes.
func Read(r io.Reader) (assign.Assignment, error) {
	const op = "assignio.Read"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	return Decode(data)
}

// Output bundles a rendered assignment with its moves, for the
// --with-moves JSON toggle spec.md §6 describes. Moves is a pointer so
// omitempty can drop the key entirely when moves weren't requested, while
// still rendering an explicitly requested empty move list as "moves": []
// rather than omitting it (a non-nil pointer is never "empty" to
// encoding/json, regardless of what it points to).
type Output struct {
	Assignment wireAssignment `json:"assignment"`
	Moves      *assign.Moves  `json:"moves,omitempty"`
}

// EncodeOutput renders a and, if withMoves is set, moves, as JSON.
func EncodeOutput(a assign.Assignment, moves assign.Moves, withMoves bool) ([]byte, error) {
	out := Output{Assignment: toWire(a)}
	if withMoves {
		if moves == nil {
			moves = assign.Moves{}
		}
		out.Moves = &moves
	}
	return json.MarshalIndent(out, "", "  ")
}
