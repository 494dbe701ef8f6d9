// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Implements the core text framing wire protocol for textframe.
//
// Frames are length-prefixed and delimiter-terminated:
//
//	frame  := length ':' type ':' payload-bytes ';'
//	length := decimal-digit+            (ASCII, no sign)
//	type   := 'T' | 'B' | 'C' | 'E'
//
// payload-bytes is exactly length bytes: raw text for T/C/E frames,
// base64 for B frames (the length field counts the encoded bytes).
//
// Includes:
//   - Frame encoding into caller-supplied sinks over pooled scratch buffers
//   - Incremental, stateless frame parsing with exact consumed-byte counts
//   - Base64 sub-encoding of binary payloads with strict length accounting
package protocol
