/*
Package inspect renders the segment layout of steady stores, for debugging
purposes.

Dot writes a Graphviz digraph of a store's segments, Console prints a compact,
colored fill chart to a terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"iter"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/steady"
)

// tracer writes to trace with key 'steady'
func tracer() tracing.Trace {
	return tracing.Select("steady")
}

// Layout is implemented by every *steady.Store[T].
type Layout interface {
	Len() int
	Cap() int
	Segments() iter.Seq[steady.SegmentInfo]
}
