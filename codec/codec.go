// File: codec/codec.go
// Package codec selects and fronts the frame codec for a wire format.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The dispatcher is deliberately thin: it pairs the writer and parser for
// the requested format and enforces the writer's complete-message
// precondition before delegating. Only the text format lives in this
// library; the binary variant is owned by the transport layer.

package codec

import (
	"fmt"

	"github.com/momentics/textframe/api"
	"github.com/momentics/textframe/core/protocol"
)

// textCodec pairs the text frame writer and parser behind api.FrameCodec.
type textCodec struct {
	w *protocol.TextFrameWriter
	p *protocol.TextFrameParser
}

// Ensure compliance with api.FrameCodec.
var _ api.FrameCodec = (*textCodec)(nil)

// New returns the frame codec for the requested wire format.
// Formats other than api.FormatText report api.ErrFormatNotSupported.
func New(format api.Format) (api.FrameCodec, error) {
	switch format {
	case api.FormatText:
		return &textCodec{
			w: protocol.NewTextFrameWriter(),
			p: protocol.NewTextFrameParser(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", api.ErrFormatNotSupported, format)
	}
}

// WriteFrame encodes msg into sink. msg must be final; a non-final
// message is a bug in the calling layer and panics before any byte
// reaches the sink.
func (c *textCodec) WriteFrame(msg *api.Message, sink api.Sink) error {
	if msg == nil || !msg.IsFinal {
		panic("textframe: cannot encode a non-final message")
	}
	return c.w.WriteFrame(msg, sink)
}

// ParseFrame extracts the first complete frame in buf; see
// protocol.TextFrameParser.ParseFrame.
func (c *textCodec) ParseFrame(buf []byte) (*api.Message, int, error) {
	return c.p.ParseFrame(buf)
}
