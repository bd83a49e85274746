package jsondiff

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// CompareJSON computes a JSON Patch that transforms the document a into the
// document b. Both inputs must be valid JSON text; neither is mutated.
// The returned patch preserves emission order, which applications must not
// re-order: array operations rely on earlier insertions & removals having
// already shifted indices
func CompareJSON(a, b []byte, opts ...DiffOption) (Patch, error) {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !gjson.ValidBytes(a) {
		return nil, fmt.Errorf("source document is not valid JSON")
	}
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("target document is not valid JSON")
	}

	d := &differ{cfg: cfg}
	d.diffValue("", gjson.ParseBytes(a), gjson.ParseBytes(b))

	// a malformed operation here is a differ bug. fail fast instead of
	// handing back a patch that won't marshal
	if err := d.patch.validate(); err != nil {
		return nil, fmt.Errorf("assembled patch is inconsistent: %w", err)
	}
	return d.patch, nil
}

// Diff is a convenience wrapper over CompareJSON that accepts any two
// JSON-serializable values, converting each with encoding/json first.
// Values that can't be represented as JSON (channels, funcs, NaN, ...)
// surface as marshalling errors here, never inside the diff itself
func Diff(a, b interface{}, opts ...DiffOption) (Patch, error) {
	aJSON, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshalling source value: %w", err)
	}
	bJSON, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshalling target value: %w", err)
	}
	return CompareJSON(aJSON, bJSON, opts...)
}

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Provide a non-nil stats pointer & the diff will populate it with
	// counts of the operations it produced
	Stats *Stats
}

// DiffOption is a function that adjusts a config, zero or more DiffOptions
// can be passed to Diff & CompareJSON
type DiffOption func(cfg *DiffConfig)

// OptionSetStats will set the passed-in stats pointer when a diff is
// calculated
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}
