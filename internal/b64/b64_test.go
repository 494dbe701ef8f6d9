// File: internal/b64/b64_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package b64_test

import (
	"bytes"
	"testing"

	"github.com/momentics/textframe/internal/b64"
)

func TestAppendEncodeAcrossPaddingBoundaries(t *testing.T) {
	cases := []struct {
		src  []byte
		want string
	}{
		{[]byte{0xAB, 0xCD, 0xEF, 0x12}, "q83vEg=="},
		{[]byte("abcd"), "YWJjZA=="},
		{[]byte("abcde"), "YWJjZGU="},
		{[]byte("abcdef"), "YWJjZGVm"},
		{nil, ""},
	}
	for _, c := range cases {
		got := b64.AppendEncode(nil, c.src)
		if string(got) != c.want {
			t.Errorf("AppendEncode(%q) = %q, want %q", c.src, got, c.want)
		}
		if len(got) != b64.EncodedLen(len(c.src)) {
			t.Errorf("EncodedLen(%d) = %d, encoded %d bytes", len(c.src), b64.EncodedLen(len(c.src)), len(got))
		}
	}
}

func TestDecodedLenFromPadding(t *testing.T) {
	cases := []struct {
		enc  string
		want int
	}{
		{"", 0},
		{"YWJjZGVm", 6}, // no padding
		{"YWJjZGU=", 5}, // one pad char
		{"YWJjZA==", 4}, // two pad chars
	}
	for _, c := range cases {
		if got := b64.DecodedLen([]byte(c.enc)); got != c.want {
			t.Errorf("DecodedLen(%q) = %d, want %d", c.enc, got, c.want)
		}
	}
}

func TestDecodeExactRoundTrip(t *testing.T) {
	for _, src := range [][]byte{
		[]byte("abcd"),
		[]byte("abcde"),
		[]byte("abcdef"),
		{0xAB, 0xCD, 0xEF, 0x12},
	} {
		enc := b64.AppendEncode(nil, src)
		got, err := b64.DecodeExact(enc)
		if err != nil {
			t.Fatalf("DecodeExact(%q) failed: %v", enc, err)
		}
		if !bytes.Equal(got, src) {
			t.Errorf("round trip mismatch: got %v, want %v", got, src)
		}
	}
}

func TestDecodeExactRejectsCorruptInput(t *testing.T) {
	for _, enc := range []string{
		"q83v!g==", // illegal alphabet byte
		"q83vE",    // not a multiple of four
		"====",     // padding only
	} {
		if _, err := b64.DecodeExact([]byte(enc)); err == nil {
			t.Errorf("DecodeExact(%q) succeeded, want failure", enc)
		}
	}
}
