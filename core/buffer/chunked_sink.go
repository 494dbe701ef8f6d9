// File: core/buffer/chunked_sink.go
// Package buffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-chunk sink over pooled buffers. Chunks are drawn from the byte
// pool and tracked in a FIFO ring, so a long write session reuses the
// same handful of allocations.

package buffer

import (
	"github.com/eapache/queue"

	"github.com/momentics/textframe/pool"
)

// ChunkedSink stores appended bytes in fixed-size pooled chunks. For a
// given append sequence its flattened output is byte-identical to a
// BytesSink; only the backing layout differs.
type ChunkedSink struct {
	chunkSize int
	chunks    *queue.Queue // full chunks, oldest first
	tail      []byte       // current partial chunk, nil when none open
	size      int
}

// NewChunkedSink returns a sink splitting output into chunkSize-byte
// pooled chunks. chunkSize must be positive.
func NewChunkedSink(chunkSize int) *ChunkedSink {
	if chunkSize <= 0 {
		panic("chunk size must be positive")
	}
	return &ChunkedSink{
		chunkSize: chunkSize,
		chunks:    queue.New(),
	}
}

// Append implements api.Sink, splitting p across chunk boundaries.
func (s *ChunkedSink) Append(p []byte) error {
	for len(p) > 0 {
		if s.tail == nil {
			s.tail = pool.Get(s.chunkSize)[:0]
		}
		n := s.chunkSize - len(s.tail)
		if n > len(p) {
			n = len(p)
		}
		s.tail = append(s.tail, p[:n]...)
		p = p[n:]
		s.size += n
		if len(s.tail) == s.chunkSize {
			s.chunks.Add(s.tail)
			s.tail = nil
		}
	}
	return nil
}

// Bytes flattens every chunk into one freshly allocated slice.
func (s *ChunkedSink) Bytes() []byte {
	out := make([]byte, 0, s.size)
	for i := 0; i < s.chunks.Length(); i++ {
		out = append(out, s.chunks.Get(i).([]byte)...)
	}
	return append(out, s.tail...)
}

// Len reports the number of bytes appended so far.
func (s *ChunkedSink) Len() int {
	return s.size
}

// Release returns every chunk to the byte pool and empties the sink.
// The sink remains usable afterwards.
func (s *ChunkedSink) Release() {
	for s.chunks.Length() > 0 {
		pool.Put(s.chunks.Remove().([]byte))
	}
	if s.tail != nil {
		pool.Put(s.tail)
		s.tail = nil
	}
	s.size = 0
}
