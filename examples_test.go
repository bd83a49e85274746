package jsondiff

import (
	"fmt"
	"os"
)

func ExampleCompareJSON() {
	// start with two slightly different json documents
	aJSON := []byte(`{
		"a": 100,
		"foo": [1,2,3],
		"baz": {
			"b": 4
		}
	}`)

	bJSON := []byte(`{
		"a": 99,
		"foo": [1,2,3],
		"baz": {
			"b": 5
		}
	}`)

	// CompareJSON produces an RFC 6902 patch that turns the first
	// document into the second. every remove & replace is preceded by a
	// test guard asserting the value being changed
	patch, err := CompareJSON(aJSON, bJSON)
	if err != nil {
		panic(err)
	}

	fmt.Println(patch)
	// Output: [{"op":"test","path":"/a","value":100},{"op":"replace","path":"/a","value":99},{"op":"test","path":"/baz/b","value":4},{"op":"replace","path":"/baz/b","value":5}]
}

func ExampleApply() {
	aJSON := []byte(`{"x":1,"y":2}`)
	bJSON := []byte(`{"y":2,"z":3}`)

	patch, err := CompareJSON(aJSON, bJSON)
	if err != nil {
		panic(err)
	}

	// applying the patch back to the first document yields the second
	patched, err := Apply(aJSON, patch)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(patched))
	// Output: {"y":2,"z":3}
}

func ExampleFormatPretty() {
	patch, err := CompareJSON([]byte(`{"a":1,"b":2}`), []byte(`{"a":1,"c":3}`))
	if err != nil {
		panic(err)
	}

	if err := FormatPretty(os.Stdout, patch, false); err != nil {
		panic(err)
	}
	// Output: ? /b: 2
	// - /b
	// + /c: 3
}
