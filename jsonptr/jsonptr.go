// Package jsonptr builds JSON Pointer (RFC 6901) paths for patch operations.
//
// A pointer is a string of "/"-prefixed segments appended in root-to-leaf
// order. Object keys are escaped per RFC 6901 before they become segments,
// array indices are written as plain decimal strings.
//
// Reference: https://tools.ietf.org/html/rfc6901
package jsonptr

import (
	"strconv"
	"strings"
)

// Escape escapes special characters in an object key for use as a pointer
// segment. Per RFC 6901:
//   - "~" is encoded as "~0"
//   - "/" is encoded as "~1"
func Escape(key string) string {
	// Order matters: escape ~ first, then /
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// Unescape reverses the escaping applied by Escape.
// Per RFC 6901:
//   - "~1" is decoded as "/"
//   - "~0" is decoded as "~"
func Unescape(segment string) string {
	// Order matters: unescape / first, then ~
	segment = strings.ReplaceAll(segment, "~1", "/")
	segment = strings.ReplaceAll(segment, "~0", "~")
	return segment
}

// Append extends a pointer with an object key, escaping the key first.
// The empty pointer refers to the whole document, so Append("", "a") is "/a".
func Append(ptr, key string) string {
	return ptr + "/" + Escape(key)
}

// AppendIndex extends a pointer with an array index. Indices are decimal
// strings and never contain characters that need escaping.
func AppendIndex(ptr string, i int) string {
	return ptr + "/" + strconv.Itoa(i)
}
