// File: pool/bytepool.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"
)

// Predefined buffer size classes (bytes), smallest first.
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	512,
	2 * 1024,
	8 * 1024,
	32 * 1024,
	128 * 1024,
	512 * 1024,
	2 * 1024 * 1024,
}

// slabThreshold: classes at or above this size come from the platform
// slab allocator instead of sync.Pool recycling.
const slabThreshold = 512 * 1024

// Stats aggregates buffer allocation/reuse accounting.
type Stats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}

// BytePool hands out byte slices grouped into size classes.
// Get returns a slice whose length equals the class size covering the
// request, so callers reslice to [:0] for append-style use.
type BytePool struct {
	classes [len(sizeClasses)]sync.Pool

	allocs atomic.Int64
	frees  atomic.Int64
	inUse  atomic.Int64
}

// NewBytePool initializes an empty pool; classes fill lazily on Put.
func NewBytePool() *BytePool {
	return &BytePool{}
}

// classIndex returns the smallest class covering size, or -1 when the
// request exceeds the largest class.
func classIndex(size int) int {
	for i, c := range sizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// Get returns a buffer of at least size bytes (length set to the class
// size, or to size itself for oversized requests).
func (p *BytePool) Get(size int) []byte {
	p.allocs.Add(1)
	p.inUse.Add(1)

	ci := classIndex(size)
	if ci < 0 {
		// Beyond the largest class: plain allocation, never pooled.
		return make([]byte, size)
	}
	class := sizeClasses[ci]
	if class >= slabThreshold {
		return slabAlloc(class)
	}
	if buf, ok := p.classes[ci].Get().([]byte); ok {
		return buf
	}
	return make([]byte, class)
}

// Put returns buf to its size class. Buffers whose capacity matches no
// class (oversized Get results, foreign slices) are left to the garbage
// collector. buf must not be used after Put.
func (p *BytePool) Put(buf []byte) {
	p.frees.Add(1)
	p.inUse.Add(-1)

	buf = buf[:cap(buf)]
	for i, c := range sizeClasses {
		if len(buf) < c {
			return
		}
		if len(buf) == c {
			if c >= slabThreshold {
				slabFree(buf)
				return
			}
			p.classes[i].Put(buf)
			return
		}
	}
}

// Stats exposes allocation accounting for observability.
func (p *BytePool) Stats() Stats {
	return Stats{
		TotalAlloc: p.allocs.Load(),
		TotalFree:  p.frees.Load(),
		InUse:      p.inUse.Load(),
	}
}
