// File: core/protocol/text_parser.go
// Package protocol implements the incremental text frame parser.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Consumes a byte buffer holding zero, one, or many complete or partial
// frames and extracts the first complete frame per call, reporting the
// exact byte span it occupied so streaming callers can advance and parse
// again. Parsing is stateless: every call is self-contained and idempotent
// for the same input.

package protocol

import (
	"bytes"
	"fmt"

	"github.com/momentics/textframe/api"
	"github.com/momentics/textframe/internal/b64"
)

// TextFrameParser extracts one leading frame per call from a byte buffer.
// It holds no state between calls; a single value may serve concurrent
// parses of independent buffers.
type TextFrameParser struct{}

// NewTextFrameParser returns a text frame parser.
func NewTextFrameParser() *TextFrameParser {
	return &TextFrameParser{}
}

// ParseFrame parses the first complete frame in buf.
//
// On success it returns the decoded message (always final: the format has
// no fragmentation marker) and the exact number of leading bytes the frame
// occupied, terminator included. Callers slice buf by the consumed count
// and call again to walk a multi-frame buffer.
//
// Every failure returns (nil, 0, err) with err wrapping
// api.ErrInvalidFrame or api.ErrFrameTooLarge. A truncated frame and a
// malformed one are reported identically: a streaming caller may buffer
// more bytes and retry, or abandon the stream as corrupt.
func (p *TextFrameParser) ParseFrame(buf []byte) (*api.Message, int, error) {
	sep := bytes.IndexByte(buf, FieldDelimiter)
	if sep < 0 {
		return nil, 0, fmt.Errorf("%w: no length delimiter", api.ErrInvalidFrame)
	}

	length, err := parseLength(buf[:sep])
	if err != nil {
		return nil, 0, err
	}

	// Everything from the first delimiter on must cover the delimiter,
	// the type flag, the second delimiter, the payload, and the
	// terminator.
	if len(buf)-sep < length+headerTail {
		return nil, 0, fmt.Errorf("%w: frame truncated", api.ErrInvalidFrame)
	}

	flag := buf[sep+1]
	if buf[sep+2] != FieldDelimiter {
		return nil, 0, fmt.Errorf("%w: malformed frame header", api.ErrInvalidFrame)
	}
	kind, ok := kindForFlag(flag)
	if !ok {
		return nil, 0, fmt.Errorf("%w: unknown type flag %q", api.ErrInvalidFrame, flag)
	}

	// Copy the payload section out of the caller's buffer; the returned
	// message owns its bytes.
	start := sep + 3
	payload := make([]byte, length)
	copy(payload, buf[start:start+length])

	if kind == api.KindBinary && length > 0 {
		decoded, err := b64.DecodeExact(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", api.ErrInvalidFrame, err)
		}
		payload = decoded
	}

	if buf[start+length] != FrameTerminator {
		return nil, 0, fmt.Errorf("%w: missing frame terminator", api.ErrInvalidFrame)
	}

	consumed := sep + headerTail + length
	return &api.Message{Kind: kind, Payload: payload, IsFinal: true}, consumed, nil
}

// parseLength parses the strict unsigned decimal length field: ASCII
// digits only, no sign, no surrounding characters, nothing left over.
// The running value is capped at MaxFramePayload, which also rejects
// fields large enough to overflow.
func parseLength(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, fmt.Errorf("%w: empty length field", api.ErrInvalidFrame)
	}
	n := 0
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-numeric length field", api.ErrInvalidFrame)
		}
		n = n*10 + int(c-'0')
		if n > MaxFramePayload {
			return 0, fmt.Errorf("%w: declared length %d", api.ErrFrameTooLarge, n)
		}
	}
	return n, nil
}
