package jsondiff

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/Jitendex/MinimalJsonDiff/jsonptr"
)

// differ accumulates the operation sequence for a single CompareJSON call.
// it holds no state beyond that call, so concurrent diffs never interfere
type differ struct {
	cfg   *DiffConfig
	patch Patch
}

// diffValue routes a pair of values to the strategy matching their shape.
// a value that changes type (object to array, array to scalar, ...) is
// replaced wholesale, never recursed into
func (d *differ) diffValue(path string, a, b gjson.Result) {
	switch {
	case a.IsObject() && b.IsObject():
		d.diffObject(path, a, b)
	case a.IsArray() && b.IsArray():
		d.diffArray(path, a, b)
	case deepEqual(a, b):
		// nothing to emit
	default:
		d.test(path, a)
		d.replace(path, b)
	}
}

// diffObject compares two objects key by key. Keys existing in a are
// handled first, in a's own order: recurse for keys b shares, test+remove
// for keys b dropped. Keys new in b are added afterwards, in b's order
func (d *differ) diffObject(path string, a, b gjson.Result) {
	aMembers := members(a)
	bMembers := members(b)

	a.ForEach(func(key, av gjson.Result) bool {
		p := jsonptr.Append(path, key.Str)
		if bv, ok := bMembers[key.Str]; ok {
			d.diffValue(p, av, bv)
		} else {
			d.test(p, av)
			d.remove(p)
		}
		return true
	})

	b.ForEach(func(key, bv gjson.Result) bool {
		if _, ok := aMembers[key.Str]; !ok {
			d.add(jsonptr.Append(path, key.Str), bv)
		}
		return true
	})
}

// diffArray compares two arrays index by index. Element i of a is only
// ever compared against element i of b, never matched across indices, so
// rotations & mid-array insertions come out as per-index replacements
func (d *differ) diffArray(path string, a, b gjson.Result) {
	av, bv := a.Array(), b.Array()

	// when exactly one side is empty the arrays are maximally dissimilar:
	// replace the whole array instead of emitting one operation per element
	if (len(av) == 0) != (len(bv) == 0) {
		d.test(path, a)
		d.replace(path, b)
		return
	}

	if len(av) <= len(bv) {
		// ascending is safe here: additions only ever extend the tail,
		// already-processed lower indices are never shifted
		for i := 0; i < len(bv); i++ {
			p := jsonptr.AppendIndex(path, i)
			if i < len(av) {
				d.diffValue(p, av[i], bv[i])
			} else {
				d.add(p, bv[i])
			}
		}
		return
	}

	// a remove at index i shifts every higher index down by one, so the
	// excess tail must be removed highest-first to keep already-emitted
	// indices valid
	for i := len(av) - 1; i >= 0; i-- {
		p := jsonptr.AppendIndex(path, i)
		if i < len(bv) {
			d.diffValue(p, av[i], bv[i])
		} else {
			d.test(p, av[i])
			d.remove(p)
		}
	}
}

func (d *differ) test(path string, v gjson.Result) {
	d.patch = append(d.patch, Operation{Op: OpTest, Path: path, Value: rawValue(v)})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Tests++
	}
}

func (d *differ) add(path string, v gjson.Result) {
	d.patch = append(d.patch, Operation{Op: OpAdd, Path: path, Value: rawValue(v)})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Adds++
	}
}

func (d *differ) remove(path string) {
	d.patch = append(d.patch, Operation{Op: OpRemove, Path: path})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Removes++
	}
}

func (d *differ) replace(path string, v gjson.Result) {
	d.patch = append(d.patch, Operation{Op: OpReplace, Path: path, Value: rawValue(v)})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Replaces++
	}
}

// rawValue copies a value's raw JSON into an operation operand, compacted
// so emitted operations never carry the source document's whitespace
func rawValue(v gjson.Result) json.RawMessage {
	return json.RawMessage(pretty.Ugly([]byte(v.Raw)))
}

// members indexes an object's entries by key for O(1) lookup from the
// other document's iteration
func members(obj gjson.Result) map[string]gjson.Result {
	m := map[string]gjson.Result{}
	obj.ForEach(func(key, value gjson.Result) bool {
		m[key.Str] = value
		return true
	})
	return m
}

// deepEqual reports whether two values are structurally equal: same shape
// and, for objects & arrays, equal deep content. Object key order is not
// significant, numbers compare by numeric value rather than lexeme, so
// 1.0 equals 1
func deepEqual(a, b gjson.Result) bool {
	switch {
	case a.IsObject() && b.IsObject():
		am, bm := members(a), members(b)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !deepEqual(av, bv) {
				return false
			}
		}
		return true
	case a.IsArray() && b.IsArray():
		av, bv := a.Array(), b.Array()
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case a.IsObject() || a.IsArray() || b.IsObject() || b.IsArray():
		return false
	}

	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case gjson.Number:
		return a.Num == b.Num
	case gjson.String:
		return a.Str == b.Str
	default:
		// True, False & Null carry no payload beyond their type
		return true
	}
}
