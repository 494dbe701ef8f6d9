// File: core/buffer/sink_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer_test

import (
	"bytes"
	"testing"

	"github.com/momentics/textframe/core/buffer"
)

func TestBytesSinkAppendAndReset(t *testing.T) {
	sink := buffer.NewBytesSink()
	for _, part := range []string{"12:", "T:", "hello, world", ";"} {
		if err := sink.Append([]byte(part)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if got := string(sink.Bytes()); got != "12:T:hello, world;" {
		t.Errorf("got %q", got)
	}
	if sink.Len() != 18 {
		t.Errorf("Len = %d, want 18", sink.Len())
	}

	sink.Reset()
	if sink.Len() != 0 {
		t.Errorf("Len after Reset = %d", sink.Len())
	}
}

func TestChunkedSinkMatchesBytesSink(t *testing.T) {
	parts := [][]byte{
		[]byte("5:T:Hello;"),
		[]byte("0:B:;"),
		bytes.Repeat([]byte{0x5A}, 300),
		{},
		[]byte(";"),
	}

	reference := buffer.NewBytesSink()
	for _, p := range parts {
		if err := reference.Append(p); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	for _, chunkSize := range []int{1, 2, 16, 256, 4096} {
		chunked := buffer.NewChunkedSink(chunkSize)
		for _, p := range parts {
			if err := chunked.Append(p); err != nil {
				t.Fatalf("chunk size %d: Append failed: %v", chunkSize, err)
			}
		}
		if chunked.Len() != reference.Len() {
			t.Errorf("chunk size %d: Len = %d, want %d", chunkSize, chunked.Len(), reference.Len())
		}
		if !bytes.Equal(chunked.Bytes(), reference.Bytes()) {
			t.Errorf("chunk size %d: contents differ", chunkSize)
		}
		chunked.Release()
	}
}

func TestChunkedSinkReusableAfterRelease(t *testing.T) {
	sink := buffer.NewChunkedSink(4)
	if err := sink.Append([]byte("0123456789")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	sink.Release()
	if sink.Len() != 0 {
		t.Fatalf("Len after Release = %d", sink.Len())
	}

	if err := sink.Append([]byte("abc")); err != nil {
		t.Fatalf("Append after Release failed: %v", err)
	}
	if got := string(sink.Bytes()); got != "abc" {
		t.Errorf("got %q after reuse", got)
	}
}

func TestChunkedSinkRejectsBadChunkSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("zero chunk size accepted")
		}
	}()
	buffer.NewChunkedSink(0)
}
