// File: pool/default.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// defaultPool serves the package-level Get/Put helpers used by the codec
// and sink layers.
var defaultPool = NewBytePool()

// Get returns a buffer of at least size bytes from the default pool.
func Get(size int) []byte {
	return defaultPool.Get(size)
}

// Put returns buf to the default pool. buf must not be used afterwards.
func Put(buf []byte) {
	defaultPool.Put(buf)
}

// DefaultStats exposes the default pool's accounting.
func DefaultStats() Stats {
	return defaultPool.Stats()
}
