package steady

import (
	"fmt"

	"github.com/npillmayer/steady/segment"
)

// ErrInvariantViolated is returned by Check if a store is structurally corrupt.
const ErrInvariantViolated = StoreError("steady: invariant violated")

// Check validates structural store invariants:
//
//   - allocated segments form a prefix of the segment table,
//   - every allocated segment has exactly its geometric capacity,
//   - live elements fit into allocated segments and the configured maximum.
//
// Check is meant to be used in tests.
func (s *Store[T]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil store", ErrInvariantViolated)
	}
	if s.nseg < 0 || s.nseg > segment.Count {
		return fmt.Errorf("%w: segment count %d out of range", ErrInvariantViolated, s.nseg)
	}
	for i, seg := range s.segments {
		if i >= s.nseg {
			if seg != nil {
				return fmt.Errorf("%w: segment %d allocated out of order", ErrInvariantViolated, i)
			}
			continue
		}
		if seg == nil {
			return fmt.Errorf("%w: gap at segment %d", ErrInvariantViolated, i)
		}
		if len(seg) != segment.Capacity(i) || cap(seg) != segment.Capacity(i) {
			return fmt.Errorf("%w: segment %d has size %d/%d, expected %d",
				ErrInvariantViolated, i, len(seg), cap(seg), segment.Capacity(i))
		}
	}
	if s.length < 0 || s.length > s.Cap() {
		return fmt.Errorf("%w: length %d exceeds capacity %d", ErrInvariantViolated, s.length, s.Cap())
	}
	if s.length > s.MaxLen() {
		return fmt.Errorf("%w: length %d exceeds maximum %d", ErrInvariantViolated, s.length, s.MaxLen())
	}
	return nil
}
