package types

import "fmt"

// idPrefix is the leading segment of every container id.
const idPrefix = "KON"

// Sequencer hands out container ids of the form KON-<code>-<n>. Each type
// code has its own counter starting at 1. The zero value is ready to use.
//
// A Sequencer is owned by whoever builds containers; tests create a fresh
// one or call Reset to get deterministic ids.
type Sequencer struct {
	next map[Kind]int
}

// NewSequencer returns an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next returns the next id for kind and advances its counter.
func (s *Sequencer) Next(kind Kind) string {
	if s.next == nil {
		s.next = make(map[Kind]int)
	}
	s.next[kind]++
	return fmt.Sprintf("%s-%s-%d", idPrefix, kind.Code(), s.next[kind])
}

// Peek returns the number the next id for kind will carry, without
// advancing the counter.
func (s *Sequencer) Peek(kind Kind) int {
	return s.next[kind] + 1
}

// Reset restarts every counter at 1.
func (s *Sequencer) Reset() {
	s.next = nil
}
