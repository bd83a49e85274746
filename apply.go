package jsondiff

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies a patch to a JSON document, returning the patched document.
// The document is not modified in place. Embedded test operations are
// evaluated, so applying a patch to a document that no longer matches the
// diff's source fails instead of silently producing the wrong result
func Apply(doc []byte, p Patch) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}

	patched, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return patched, nil
}
