// File: api/codec.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Codec-facing interfaces: frame writer, frame parser, and the combined
// frame codec contract implemented per wire format.

package api

// Format selects a wire format implementation.
type Format int

const (
	// FormatText is the length-prefixed, delimiter-terminated text
	// encoding <length>:<type>:<payload>;.
	FormatText Format = iota

	// FormatBinary is reserved for the binary framing variant, which is
	// handled outside this library.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Sink is an append-only, growable byte destination used by frame writers.
// Growth and chunking policy belong to the sink, not to the writer.
//
// A sink must not be mutated concurrently during a write call; enforcing
// single-writer discipline is the caller's responsibility.
type Sink interface {
	// Append accepts one run of bytes. p must not be retained after the
	// call returns.
	Append(p []byte) error
}

// FrameWriter serializes complete messages into their wire encoding.
type FrameWriter interface {
	// WriteFrame appends one encoded frame for msg to sink.
	// msg must be final: encoding a non-final message is a bug in the
	// calling layer and panics rather than producing a malformed frame.
	WriteFrame(msg *Message, sink Sink) error
}

// FrameParser extracts leading frames from byte buffers.
type FrameParser interface {
	// ParseFrame parses the first complete frame in buf, returning the
	// decoded message and the exact number of leading bytes the frame
	// occupied, terminator included. Callers advance by the consumed
	// count to reach the next frame in a multi-frame buffer.
	//
	// Every failure returns (nil, 0, err). An incomplete frame and a
	// malformed one are reported identically; a streaming caller may
	// either buffer more bytes and retry, or abandon the stream.
	ParseFrame(buf []byte) (*Message, int, error)
}

// FrameCodec joins both directions of one wire format.
type FrameCodec interface {
	FrameWriter
	FrameParser
}
