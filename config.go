package steady

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/steady/segment"
	"golang.org/x/sync/semaphore"
)

// MaxLen is the maximum number of elements a store can hold, 2³².
const MaxLen = segment.MaxLen

// Config configures a Store.
type Config struct {
	// MaxLen lowers the maximum length of the store. 0 means MaxLen.
	MaxLen int
	// Budget, if set, accounts for the memory of every segment allocated.
	Budget MemoryBudget
}

func (cfg Config) normalized() Config {
	if cfg.MaxLen == 0 {
		cfg.MaxLen = MaxLen
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.MaxLen < 0 {
		return fmt.Errorf("%w: negative maximum length %d", ErrInvalidConfig, cfg.MaxLen)
	}
	if cfg.MaxLen > MaxLen {
		return fmt.Errorf("%w: maximum length %d exceeds %d", ErrInvalidConfig, cfg.MaxLen, MaxLen)
	}
	return nil
}

// --- Memory budget ---------------------------------------------------------

// MemoryBudget is consulted before a store allocates a segment and notified
// when segments are freed. An error returned from Acquire makes the allocation
// fail with ErrAllocationFailure.
//
// A budget may be shared between stores and must then be safe for concurrent
// use.
type MemoryBudget interface {
	Acquire(bytes int64) error
	Release(bytes int64)
}

// MemoryLimit is a MemoryBudget with a hard upper limit. It never blocks:
// requests which do not fit are refused immediately.
type MemoryLimit struct {
	limit int64
	sem   *semaphore.Weighted
	used  atomic.Int64
}

var _ MemoryBudget = (*MemoryLimit)(nil)

// NewMemoryLimit creates a budget of limit bytes.
func NewMemoryLimit(limit int64) *MemoryLimit {
	assert(limit >= 0, "memory limit must not be negative")
	return &MemoryLimit{
		limit: limit,
		sem:   semaphore.NewWeighted(limit),
	}
}

// Acquire reserves bytes from the budget, if available.
func (m *MemoryLimit) Acquire(bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if !m.sem.TryAcquire(bytes) {
		return fmt.Errorf("%w: requested %d bytes, %d of %d in use",
			ErrBudgetExhausted, bytes, m.used.Load(), m.limit)
	}
	m.used.Add(bytes)
	return nil
}

// Release hands back bytes previously acquired.
func (m *MemoryLimit) Release(bytes int64) {
	if bytes <= 0 {
		return
	}
	m.used.Add(-bytes)
	m.sem.Release(bytes)
}

// Used returns the number of bytes currently acquired.
func (m *MemoryLimit) Used() int64 {
	return m.used.Load()
}

// Limit returns the size of the budget in bytes.
func (m *MemoryLimit) Limit() int64 {
	return m.limit
}
