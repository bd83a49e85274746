package jsondiff

import (
	"reflect"
	"testing"
)

func TestCalcStats(t *testing.T) {
	src := []byte(`{"x":1,"y":2,"rows":[1,2,3]}`)
	dst := []byte(`{"y":4,"z":3,"rows":[1]}`)

	// expect: test+remove /x, test+replace /y, test+remove /rows/2,
	// test+remove /rows/1, add /z
	expect := &Stats{
		Adds:     1,
		Removes:  3,
		Replaces: 1,
		Tests:    4,
	}

	stats := &Stats{}
	if _, err := CompareJSON(src, dst, OptionSetStats(stats)); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(expect, stats) {
		t.Errorf("stats mismatch\nwant: %+v\ngot : %+v", expect, stats)
	}

	if got := stats.Total(); got != 9 {
		t.Errorf("wrong total. want: 9. got: %d", got)
	}
	if got := stats.Changes(); got != 5 {
		t.Errorf("wrong change count. want: 5. got: %d", got)
	}
}

func TestStatsZeroOnIdentity(t *testing.T) {
	stats := &Stats{}
	if _, err := CompareJSON([]byte(`{"a":[1,2]}`), []byte(`{"a":[1,2]}`), OptionSetStats(stats)); err != nil {
		t.Fatal(err)
	}
	if stats.Total() != 0 {
		t.Errorf("identity diff should count zero operations, got %+v", stats)
	}
}
