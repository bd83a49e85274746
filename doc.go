// Package jsondiff computes minimal RFC 6902 JSON Patch documents that
// describe the transformation from one JSON value to another. It's intended
// for generating human-reviewable, machine-applicable diffs, for example
// when comparing API responses or checking snapshots in tests.
//
// The differ walks both documents in lockstep and emits operations from the
// restricted set add, remove, replace & test. Every remove & replace is
// preceded by a test asserting the value being changed, so a patch doubles
// as an optimistic-concurrency guard: applying it to a document that has
// drifted from the diff's source fails loudly.
//
// The walk is deliberately greedy & local rather than globally minimal.
// Arrays are compared strictly index by index with no element matching or
// move detection, which keeps comparisons O(min(len(a), len(b))): a new
// tail is added in ascending index order, an excess tail is removed in
// descending index order so removal shifting never invalidates
// already-emitted indices, and an array that switches between empty &
// non-empty is replaced wholesale. A value that changes type is likewise
// replaced wholesale, never recursed into.
//
// Object keys containing "~" or "/" are escaped per RFC 6901 when they
// become pointer segments, see the jsonptr subpackage.
//
// jsondiff operates on raw JSON text through tidwall/gjson, which preserves
// document key order during iteration, and pairs naturally with
// evanphx/json-patch for applying the documents it produces; the Apply
// convenience wraps exactly that.
package jsondiff
