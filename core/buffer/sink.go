// File: core/buffer/sink.go
// Package buffer implements append-only byte sinks for frame writers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A sink owns its growth and chunking policy; writers only append. The
// two implementations here produce byte-identical output for identical
// append sequences and differ only in backing layout.

package buffer

// BytesSink is an unbounded, heap-backed sink. The zero value is ready
// for use.
type BytesSink struct {
	buf []byte
}

// NewBytesSink returns an empty unbounded sink.
func NewBytesSink() *BytesSink {
	return &BytesSink{}
}

// Append implements api.Sink.
func (s *BytesSink) Append(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

// Bytes returns a view of everything appended so far. The view is only
// valid until the next Append or Reset.
func (s *BytesSink) Bytes() []byte {
	return s.buf
}

// Len reports the number of bytes appended so far.
func (s *BytesSink) Len() int {
	return len(s.buf)
}

// Reset discards accumulated output, keeping capacity for reuse.
func (s *BytesSink) Reset() {
	s.buf = s.buf[:0]
}
