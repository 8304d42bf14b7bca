// Package strl implements bounded appends onto fixed-capacity, NUL-terminated
// byte buffers, with the return-value contract of BSD strlcat.
//
// A buffer is a []byte whose visible content ends at the first NUL byte. A
// source is a string whose logical length also ends at its first NUL, or at
// len(s) when it has none. Nothing in this package allocates or keeps state;
// concurrent calls are safe as long as each goroutine owns its buffer.
//
// Typical use accumulates messages into a fixed buffer and checks the return
// value for truncation:
//
//	buf := make([]byte, 64)
//	if n := strl.BoundedAppend(buf, msg, len(buf)); n >= len(buf) {
//		// msg did not fit; buf holds as much of it as possible
//	}
package strl

import (
	"bytes"
	"strings"
)

// Strnlen returns the number of bytes in b before the first NUL, scanning at
// most max bytes. Returns max (clamped to len(b)) when no NUL is found.
func Strnlen(b []byte, max int) int {
	if max > len(b) {
		max = len(b)
	}
	if max <= 0 {
		return 0
	}
	if i := bytes.IndexByte(b[:max], 0); i >= 0 {
		return i
	}
	return max
}

// Strlen returns the logical length of s: the number of bytes before its
// first NUL, or len(s).
func Strlen(s string) int {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// BoundedAppend appends as much of src onto the content of dst as fits in
// size bytes, terminator included, and returns the length the result would
// have had without the bound: Strnlen(dst, size) + Strlen(src).
//
// A return value >= size means src was truncated. When dst holds no NUL in
// its first size bytes there is no room for anything, and dst is returned
// untouched with size + Strlen(src). That includes size == 0, which callers
// should never pass.
//
// Nothing is written at or after dst[size]. size must not exceed cap(dst);
// larger values panic.
func BoundedAppend(dst []byte, src string, size int) int {
	dst = dst[:size]
	dlen := Strnlen(dst, size)
	slen := Strlen(src)

	if dlen == size {
		return size + slen
	}

	n := size - dlen - 1
	if n > slen {
		n = slen
	}
	copy(dst[dlen:], src[:n])
	dst[dlen+n] = 0

	return dlen + slen
}

// String returns the visible content of b as a string.
func String(b []byte) string {
	return string(b[:Strnlen(b, len(b))])
}

// Reset clears the visible content of b. A zero-length b is left alone.
func Reset(b []byte) {
	if len(b) > 0 {
		b[0] = 0
	}
}
