package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(p Patch, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, p, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a one-line-per-operation text report to w. if
// colorTTY is true it will add
// green "+" for additions
// red "-" for removals
// blue "~" for replacements
// a neutral "?" for test guards
func FormatPretty(w io.Writer, p Patch, colorTTY bool) error {
	var colorMap map[Op]string

	if colorTTY {
		colorMap = map[Op]string{
			Op("close"): "\x1b[0m", // end color tag

			OpAdd:     "\x1b[32m", // green
			OpRemove:  "\x1b[31m", // red
			OpReplace: "\x1b[34m", // blue
			OpTest:    "\x1b[37m", // neutral
		}
	}

	symbols := map[Op]string{
		OpAdd:     "+",
		OpRemove:  "-",
		OpReplace: "~",
		OpTest:    "?",
	}

	for _, op := range p {
		sym, ok := symbols[op.Op]
		if !ok {
			return fmt.Errorf("unknown op %q", op.Op)
		}
		if op.Op == OpRemove {
			fmt.Fprintf(w, "%s%s %s%s\n", colorMap[op.Op], sym, op.Path, colorMap[Op("close")])
			continue
		}
		fmt.Fprintf(w, "%s%s %s: %s%s\n", colorMap[op.Op], sym, op.Path, string(op.Value), colorMap[Op("close")])
	}

	return nil
}

// FormatJSONString renders the patch as indented JSON, suitable for
// writing to a terminal or a review artifact
func FormatJSONString(p Patch) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty(data)), nil
}
