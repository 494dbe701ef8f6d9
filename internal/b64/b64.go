// File: internal/b64/b64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Base64 sub-codec for binary frame payloads. Wraps the standard alphabet
// with exact-length accounting: the decoded size is derived from the
// encoded size and the trailing padding count, and the decoder output is
// checked against it. Downstream consumers read exactly that many bytes,
// so a mismatch is a hard decode failure rather than a truncation.

package b64

import (
	"encoding/base64"
	"fmt"
	"slices"
)

// EncodedLen returns the encoded length, padding included, for n source bytes.
func EncodedLen(n int) int {
	return base64.StdEncoding.EncodedLen(n)
}

// AppendEncode appends the base64 encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	// base64.(*Encoding).AppendEncode requires Go 1.22; this is its exact
	// upstream implementation, kept for Go 1.21 toolchains.
	n := base64.StdEncoding.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	base64.StdEncoding.Encode(dst[len(dst):][:n], src)
	return dst[:len(dst)+n]
}

// DecodedLen returns the exact decoded byte count for enc: three bytes per
// encoded quad, minus one byte per trailing '=' (at most two).
func DecodedLen(enc []byte) int {
	n := (len(enc) / 4) * 3
	if len(enc) > 0 && enc[len(enc)-1] == '=' {
		n--
		if len(enc) > 1 && enc[len(enc)-2] == '=' {
			n--
		}
	}
	return n
}

// DecodeExact decodes enc into a fresh buffer and verifies the decoder
// produced exactly DecodedLen(enc) bytes.
func DecodeExact(enc []byte) ([]byte, error) {
	want := DecodedLen(enc)
	out := make([]byte, base64.StdEncoding.DecodedLen(len(enc)))
	n, err := base64.StdEncoding.Decode(out, enc)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	if n != want {
		return nil, fmt.Errorf("base64 decode produced %d bytes, expected %d", n, want)
	}
	return out[:n], nil
}
