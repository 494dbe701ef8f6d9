// File: codec/scanner.go
// Package codec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Multi-frame sweep helper. Feeds a byte buffer through a frame parser
// frame by frame, queueing decoded messages in arrival order.

package codec

import (
	"github.com/eapache/queue"

	"github.com/momentics/textframe/api"
)

// Scanner drains multi-frame buffers through a FrameParser. Decoded
// messages queue in arrival order until popped with Next.
//
// The scanner keeps no byte state between Feed calls: the caller owns
// fragment accumulation and re-feeds the unconsumed tail once more data
// arrives.
type Scanner struct {
	parser  api.FrameParser
	pending *queue.Queue
}

// NewScanner returns a scanner over p.
func NewScanner(p api.FrameParser) *Scanner {
	return &Scanner{
		parser:  p,
		pending: queue.New(),
	}
}

// Feed parses every complete leading frame in buf and enqueues the
// decoded messages. It returns the total bytes consumed and the parse
// failure that stopped the sweep, nil when buf was consumed entirely.
// Messages decoded before the failure stay queued either way.
func (s *Scanner) Feed(buf []byte) (int, error) {
	consumed := 0
	for consumed < len(buf) {
		msg, n, err := s.parser.ParseFrame(buf[consumed:])
		if err != nil {
			return consumed, err
		}
		s.pending.Add(msg)
		consumed += n
	}
	return consumed, nil
}

// Next pops the oldest decoded message, reporting false when none remain.
func (s *Scanner) Next() (*api.Message, bool) {
	if s.pending.Length() == 0 {
		return nil, false
	}
	return s.pending.Remove().(*api.Message), true
}

// Pending reports how many decoded messages await Next.
func (s *Scanner) Pending() int {
	return s.pending.Length()
}
