// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Text framing wire protocol constants

package protocol

import "github.com/momentics/textframe/api"

const (
	// Single-character type flags
	FlagText   = byte('T')
	FlagBinary = byte('B')
	FlagClose  = byte('C')
	FlagError  = byte('E')

	// Frame punctuation
	FieldDelimiter  = byte(':')
	FrameTerminator = byte(';')

	// Fixed bytes past the length digits: delimiter, flag, delimiter,
	// terminator. A frame spans len(digits) + headerTail + payload bytes.
	headerTail = 4

	// maxLengthDigits bounds the decimal length field for MaxFramePayload.
	maxLengthDigits = 10
)

// MaxFramePayload defines the maximum allowed payload-section size for a
// single frame. The limit protects against absurd length fields that could
// exhaust memory before the rest of the frame is even inspected.
const MaxFramePayload = 1 << 20 // 1 MiB

// flagForKind maps a message kind to its wire type flag.
func flagForKind(k api.MessageKind) (byte, bool) {
	switch k {
	case api.KindText:
		return FlagText, true
	case api.KindBinary:
		return FlagBinary, true
	case api.KindClose:
		return FlagClose, true
	case api.KindError:
		return FlagError, true
	default:
		return 0, false
	}
}

// kindForFlag maps a wire type flag back to its message kind.
func kindForFlag(flag byte) (api.MessageKind, bool) {
	switch flag {
	case FlagText:
		return api.KindText, true
	case FlagBinary:
		return api.KindBinary, true
	case FlagClose:
		return api.KindClose, true
	case FlagError:
		return api.KindError, true
	default:
		return 0, false
	}
}
