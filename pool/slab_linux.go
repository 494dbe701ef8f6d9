// File: pool/slab_linux.go
//go:build linux

// Package pool: Linux-specific slab allocator for the largest size classes.
//
// Buffers are allocated via anonymous mmap, attempting MAP_HUGETLB for
// 2 MiB pages first and falling back to regular pages, then to the Go heap
// if both mappings fail. Mappings are tracked so release unmaps exactly
// what was mapped; heap fallbacks are left to the garbage collector.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"golang.org/x/sys/unix"
)

// hugeSize is the 2 MiB hugepage boundary mappings are rounded to.
const hugeSize = 2 << 20

// mappedRegions tracks live mappings by their first-byte address so
// slabFree can unmap the full region regardless of how the buffer was
// resliced by the pool.
var mappedRegions sync.Map // *byte -> []byte (full mapping)

// slabAlloc maps or allocates a buffer of exactly size bytes.
func slabAlloc(size int) []byte {
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize

	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		data, err = unix.Mmap(-1, 0, length,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	}
	if err != nil {
		return make([]byte, size)
	}

	mappedRegions.Store(&data[0], data)
	return data[:size:size]
}

// slabFree returns mapped memory to the OS. Buffers that came from the
// heap fallback are not registered and simply drop to the GC.
func slabFree(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:1]
	if region, ok := mappedRegions.LoadAndDelete(&buf[0]); ok {
		_ = unix.Munmap(region.([]byte))
	}
}
