package jsondiff

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Op identifies the kind of a patch operation
type Op string

const (
	// OpAdd inserts a value: a new object key, or an array element at the
	// trailing index of the path, shifting later elements up
	OpAdd = Op("add")
	// OpRemove deletes the value at a path: an object key, or an array
	// element, shifting later elements down
	OpRemove = Op("remove")
	// OpReplace sets the value at a path
	OpReplace = Op("replace")
	// OpTest asserts the current value at a path equals the given value.
	// the differ emits one immediately before every remove & replace as an
	// optimistic-concurrency guard
	OpTest = Op("test")
)

// Operation is a single RFC 6902 JSON Patch operation. Only the restricted
// set add, remove, replace & test is ever produced, so there is no "from"
// field, and remove operations leave Value empty so the field is dropped
// from the wire form
type Operation struct {
	// the kind of change
	Op Op `json:"op"`
	// Path locates the value this operation applies to, as an RFC 6901
	// JSON Pointer. the empty string addresses the whole document
	Path string `json:"path"`
	// the operand value, raw JSON. present for add, replace & test,
	// absent for remove
	Value json.RawMessage `json:"value,omitempty"`
}

// Patch is an ordered sequence of operations that transforms one JSON
// document into another. Order is load-bearing: later operations may target
// paths whose validity depends on earlier array insertions or removals
// having already been applied
type Patch []Operation

// MarshalJSON renders the patch in wire form: a JSON array of operation
// objects, [] when empty. The patch is validated first so a malformed
// operation surfaces as an error rather than malformed output
func (p Patch) MarshalJSON() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Operation(p))
}

// String renders the patch as compact JSON
func (p Patch) String() string {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("<invalid patch: %s>", err)
	}
	return string(data)
}

// validate checks the internal consistency of every operation. A failure
// here is a bug in the differ, not a property of the input documents
func (p Patch) validate() error {
	for i, op := range p {
		if op.Path != "" && !strings.HasPrefix(op.Path, "/") {
			return fmt.Errorf("operation %d: invalid pointer path %q", i, op.Path)
		}
		switch op.Op {
		case OpAdd, OpReplace, OpTest:
			if len(op.Value) == 0 {
				return fmt.Errorf("operation %d: %s %q has no value", i, op.Op, op.Path)
			}
			if !json.Valid(op.Value) {
				return fmt.Errorf("operation %d: %s %q value is not valid JSON", i, op.Op, op.Path)
			}
		case OpRemove:
			if len(op.Value) != 0 {
				return fmt.Errorf("operation %d: remove %q must not carry a value", i, op.Path)
			}
		default:
			return fmt.Errorf("operation %d: unknown op %q", i, op.Op)
		}
	}
	return nil
}
