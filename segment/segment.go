/*
Package segment computes the fixed geometry of a segmented store.

A store owns up to Count segments. Segments 0 and 1 hold 4 elements each,
every following segment doubles the capacity of its predecessor:

	segment   0   1   2    3    4    …   30
	capacity  4   4   8   16   32    …   2³¹
	start     0   4   8   16   32    …   2³¹

The start of a segment is the cumulative capacity of all segments before it.
Summing up all segments yields a total capacity of 2³² elements.

Geometry depends on logical indices only, never on the state of a store.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segment

import "math/bits"

const (
	// Count is the maximum number of segments of a store.
	Count = 31
	// MaxLen is the total capacity of all segments, 2³².
	MaxLen = 1 << 32
	// minBits is log₂ of the capacity of the first two segments.
	minBits = 2
)

// starts holds the cumulative capacities; starts[Count] == MaxLen.
var starts [Count + 1]uint64

func init() {
	var acc uint64
	for i := 0; i < Count; i++ {
		starts[i] = acc
		acc += uint64(Capacity(i))
	}
	starts[Count] = acc
	assert(acc == MaxLen, "segment geometry does not sum up to MaxLen")
}

// Capacity returns the number of elements segment i holds.
func Capacity(i int) int {
	assert(i >= 0 && i < Count, "segment index out of range")
	if i == 0 {
		return 1 << minBits
	}
	return 1 << (i + 1)
}

// Start returns the logical index of the first slot of segment i, i.e. the
// summed capacity of segments 0…i-1. i may be Count, yielding MaxLen.
func Start(i int) uint64 {
	assert(i >= 0 && i <= Count, "segment index out of range")
	return starts[i]
}

// Locate translates a logical index k into a segment number and an offset
// within that segment. k must be in the range 0…MaxLen-1.
func Locate(k uint64) (seg int, off int) {
	assert(k < MaxLen, "logical index exceeds segment geometry")
	if k < 1<<minBits {
		return 0, int(k)
	}
	seg = bits.Len64(k) - minBits
	return seg, int(k - starts[seg])
}

// Needed returns the number of segments required to hold n elements, i.e.
// the minimal i with Start(i) >= n.
func Needed(n uint64) int {
	assert(n <= MaxLen, "element count exceeds segment geometry")
	if n == 0 {
		return 0
	}
	seg, _ := Locate(n - 1)
	return seg + 1
}

// Span is a run of consecutive slots within a single segment, covering the
// offsets From…To (inclusive).
type Span struct {
	Seg, From, To int
}

// Spans splits the logical range first…last (inclusive) into per-segment
// runs, in ascending order. last must not be smaller than first.
func Spans(first, last uint64) []Span {
	assert(first <= last, "inverted logical range")
	fseg, foff := Locate(first)
	lseg, loff := Locate(last)
	spans := make([]Span, 0, lseg-fseg+1)
	for i := fseg; i <= lseg; i++ {
		sp := Span{Seg: i, From: 0, To: Capacity(i) - 1}
		if i == fseg {
			sp.From = foff
		}
		if i == lseg {
			sp.To = loff
		}
		spans = append(spans, sp)
	}
	return spans
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
