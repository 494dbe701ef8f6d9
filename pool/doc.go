// File: pool/doc.go
// Package pool implements size-classed byte pooling for codec scratch
// buffers and sink chunks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffers are grouped into a fixed table of size classes. Small classes
// recycle through sync.Pool; the largest classes are carved from a
// platform slab allocator (anonymous mmap with a hugepage attempt on
// Linux, plain heap elsewhere). Requests beyond the largest class bypass
// pooling entirely and fall to the garbage collector.
package pool
