// File: api/message.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Message value type and the closed message-kind enumeration for the
// text framing protocol.

package api

// MessageKind enumerates the four message kinds the wire format carries.
// The set is closed: the protocol has no extension mechanism for kinds.
type MessageKind int

const (
	KindText MessageKind = iota
	KindBinary
	KindClose
	KindError
)

func (k MessageKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindClose:
		return "close"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is the unit of exchange. It is a value: constructed once by the
// caller before encoding, or by the parser on a successful parse, and never
// mutated afterwards.
//
// IsFinal marks the message as the last fragment of a logical message.
// The text encoding carries no fragmentation marker, so only final
// messages can be encoded; upstream buffering assembles fragments before
// handing a message to the codec.
type Message struct {
	Kind    MessageKind
	Payload []byte
	IsFinal bool
}

// NewTextMessage builds a final text message around payload.
func NewTextMessage(payload []byte) *Message {
	return &Message{Kind: KindText, Payload: payload, IsFinal: true}
}

// NewBinaryMessage builds a final binary message around payload.
// The payload travels base64-encoded on the wire.
func NewBinaryMessage(payload []byte) *Message {
	return &Message{Kind: KindBinary, Payload: payload, IsFinal: true}
}

// NewCloseMessage builds a final close message around payload.
func NewCloseMessage(payload []byte) *Message {
	return &Message{Kind: KindClose, Payload: payload, IsFinal: true}
}

// NewErrorMessage builds a final error message around payload.
func NewErrorMessage(payload []byte) *Message {
	return &Message{Kind: KindError, Payload: payload, IsFinal: true}
}
