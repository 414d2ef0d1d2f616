// Package utf8pp is an allocation-free UTF-8 byte-sequence codec.
//
// Every function reports its outcome as an (n, err) pair:
//
//	n > 0, err == nil   a well-formed sequence of n bytes
//	n == 0, err == nil  end of input (empty buffer or a 0x00 byte)
//	n == 0, err != nil  one of the sentinel errors below
//
// Only the structural byte grammar is validated. Overlong encodings and
// UTF-16 surrogate codepoints (U+D800..U+DFFF) are accepted on decode and
// produced on encode.
package utf8pp

import "errors"

const (
	// MaxCodepoint is the largest value Encode accepts.
	MaxCodepoint = 0x10FFFF

	// MaxLen is the longest sequence the codec reads or writes.
	MaxLen = 4
)

var (
	// ErrMalformed is returned when the bytes at the scan position are not
	// a structurally valid UTF-8 sequence.
	ErrMalformed = errors.New("utf8pp: malformed utf-8 sequence")

	// ErrInvalidCodepoint is returned by Encode for values outside
	// [0, MaxCodepoint].
	ErrInvalidCodepoint = errors.New("utf8pp: invalid codepoint")

	// ErrCursorOutOfRange is returned by the backward functions when the
	// cursor lies outside [0, len(buf)].
	ErrCursorOutOfRange = errors.New("utf8pp: cursor out of range")

	// ErrShortBuffer is returned by Encode when dst cannot hold the
	// encoded sequence.
	ErrShortBuffer = errors.New("utf8pp: destination buffer too short")
)
