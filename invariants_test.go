package steady

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckDetectsGap(t *testing.T) {
	s := Of(1, 2, 3, 4, 5, 6)
	s.segments[0] = nil // corrupt segment table on purpose
	err := s.Check()
	if !errors.Is(err, ErrInvariantViolated) || !strings.Contains(err.Error(), "gap at segment 0") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsOutOfOrderSegment(t *testing.T) {
	s := Of(1, 2)
	s.segments[3] = make([]int, 16)
	err := s.Check()
	if err == nil || !strings.Contains(err.Error(), "out of order") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsResizedSegment(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)
	s.segments[1] = append(s.segments[1], 6)
	err := s.Check()
	if err == nil || !strings.Contains(err.Error(), "segment 1 has size") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsLengthDrift(t *testing.T) {
	s := Of(1, 2, 3)
	s.length = 5
	err := s.Check()
	if err == nil || !strings.Contains(err.Error(), "exceeds capacity") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckNilStore(t *testing.T) {
	var s *Store[int]
	if err := s.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Fatalf("expected ErrInvariantViolated for nil store, got %v", err)
	}
}
