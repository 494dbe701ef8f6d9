// File: api/errors.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared across the textframe library.

package api

import "fmt"

// Common errors used across the library. All of them mark recoverable
// failures: the codec reports them and lets the caller decide whether to
// buffer more input, drop the message, or tear down the stream.
var (
	// ErrInvalidFrame covers every malformed or incomplete frame seen by
	// the parser. The two cases are deliberately not distinguished; see
	// FrameParser.ParseFrame.
	ErrInvalidFrame = fmt.Errorf("invalid frame")

	// ErrFrameTooLarge rejects payload sections beyond the frame size
	// limit, in either direction.
	ErrFrameTooLarge = fmt.Errorf("frame payload exceeds maximum allowed size")

	// ErrUnknownKind rejects a message whose kind is outside the closed
	// enumeration. Unreachable through the public constructors.
	ErrUnknownKind = fmt.Errorf("unknown message kind")

	// ErrFormatNotSupported is reported by the codec dispatcher for wire
	// formats this library does not implement.
	ErrFormatNotSupported = fmt.Errorf("wire format not supported")
)
