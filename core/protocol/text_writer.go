// File: core/protocol/text_writer.go
// Package protocol implements the text frame writer with pooled scratch buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Serializes one complete message into the <length>:<type>:<payload>;
// encoding, base64-encoding binary payloads, and appends the finished
// frame to a caller-supplied sink in a single run.

package protocol

import (
	"fmt"
	"strconv"

	"github.com/momentics/textframe/api"
	"github.com/momentics/textframe/internal/b64"
	"github.com/momentics/textframe/pool"
)

// TextFrameWriter serializes complete messages into the text wire encoding.
// It holds no state; a single value may serve concurrent writes to
// independent sinks.
type TextFrameWriter struct{}

// NewTextFrameWriter returns a text frame writer.
func NewTextFrameWriter() *TextFrameWriter {
	return &TextFrameWriter{}
}

// WriteFrame appends one encoded frame for msg to sink.
//
// msg must be final. The text encoding carries no fragmentation marker, so
// upstream buffering must assemble fragments before this call; a non-final
// message here is a bug in the calling layer and panics.
//
// The frame is assembled in a pooled scratch buffer and handed to the sink
// as one append, so output bytes are identical regardless of the sink's
// chunking policy. On a sink failure no rollback is attempted; callers
// treat any write failure as fatal for that frame.
func (w *TextFrameWriter) WriteFrame(msg *api.Message, sink api.Sink) error {
	if msg == nil || !msg.IsFinal {
		panic("textframe: WriteFrame requires a final message")
	}

	flag, ok := flagForKind(msg.Kind)
	if !ok {
		// Unreachable through the public constructors.
		return fmt.Errorf("%w: kind %d", api.ErrUnknownKind, int(msg.Kind))
	}

	// The length field counts payload-section bytes: raw for T/C/E,
	// base64-encoded for B.
	plen := len(msg.Payload)
	if msg.Kind == api.KindBinary {
		plen = b64.EncodedLen(plen)
	}
	if plen > MaxFramePayload {
		return fmt.Errorf("%w: payload section is %d bytes", api.ErrFrameTooLarge, plen)
	}

	scratch := pool.Get(maxLengthDigits + headerTail + plen)
	defer pool.Put(scratch)

	frame := scratch[:0]
	frame = strconv.AppendUint(frame, uint64(plen), 10)
	frame = append(frame, FieldDelimiter, flag, FieldDelimiter)
	if msg.Kind == api.KindBinary {
		frame = b64.AppendEncode(frame, msg.Payload)
	} else {
		frame = append(frame, msg.Payload...)
	}
	frame = append(frame, FrameTerminator)

	return sink.Append(frame)
}
