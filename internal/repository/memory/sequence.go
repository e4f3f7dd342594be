package memory

import "sync/atomic"

// Sequence hands out monotonically increasing ids starting at 1
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

