package invoices

import "sync/atomic"

// Sequence hands out invoice numbers. Next is safe for concurrent use and
// every call returns a number greater than all earlier ones.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first number is first. Values below 1
// start the sequence at 1.
func NewSequence(first int64) *Sequence {
	if first < 1 {
		first = 1
	}
	s := &Sequence{}
	s.last.Store(first - 1)
	return s
}

// Next returns the next number.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

var defaultSequence = NewSequence(1)
