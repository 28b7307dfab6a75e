/*
Package steady offers a growable sequence container whose elements never move.

Steady Stores

A Store behaves much like a Go slice which is extended by appending, but growth
never copies existing elements to a new backing array. Instead, additional
capacity is added as an independent segment, leaving all previously allocated
segments untouched. A pointer obtained from Store.At therefore stays valid
across any number of pushes, pops and growth events.

Segments double in size:

	segment   0   1   2    3    4    …   30
	capacity  4   4   8   16   32    …   2³¹

Up to 31 segments are possible, yielding a maximum length of 2³² elements.
Translating a logical index to a segment position is a constant-time bit
operation (see package segment).

The only operations which change the address holding a logical element are
Insert and Remove (and their relatives SwapRemove, Truncate). They shift the
values of all elements at or above the index they operate on, but they never
move the slots themselves. Clients holding pointers must not insert or remove
below the positions they refer to.

Stores do not synchronize access. Address stability makes them a suitable
building block for concurrent structures, but such a layer has to be provided
by clients.

Capacity is retained for the lifetime of a store. Memory is handed back by
calling Free, which drops all segments at once. Clients wanting to account for
segment memory may configure a MemoryBudget.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package steady

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'steady'
func tracer() tracing.Trace {
	return tracing.Select("steady")
}

// StoreError is an error type for the steady module
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a logical index does not address a
// live element (or, for Insert, is greater than the length of the store).
const ErrIndexOutOfBounds = StoreError("steady: index out of bounds")

// ErrCapacityExceeded is flagged whenever growth would exceed the maximum
// length of a store.
const ErrCapacityExceeded = StoreError("steady: capacity exceeded")

// ErrAllocationFailure is flagged if memory for a new segment cannot be
// provided. The store remains unchanged.
const ErrAllocationFailure = StoreError("steady: segment allocation failed")

// ErrBudgetExhausted is flagged by a MemoryLimit refusing a request.
const ErrBudgetExhausted = StoreError("steady: memory budget exhausted")

// ErrInvalidConfig signals an invalid store configuration.
const ErrInvalidConfig = StoreError("steady: invalid configuration")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StoreError("steady: illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
