// File: pool/slab_stub.go
//go:build !linux

// Package pool: portable slab fallback. Non-Linux platforms allocate the
// largest size classes from the Go heap and let the garbage collector
// reclaim them.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

func slabAlloc(size int) []byte {
	return make([]byte, size)
}

func slabFree(buf []byte) {
	// GC handles memory
}
