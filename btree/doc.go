/*
Package btree implements the core of an in-memory, ordered associative
container: a B+ tree with unique keys, flexible add/update semantics, a
bidirectional range iterator over a doubly-linked leaf chain, and a
bulk-loading builder that falls back to iterative insertion on
out-of-order input.

Node payloads are backed by a circular buffer (package ring) rather than
a plain slice, so an insert or remove anywhere in a node shifts whichever
side of the edit point is shorter, and edits at either end run in O(1).

Rebalancing on insert prefers spilling one entry into a non-full sibling
over splitting; rebalancing on delete prefers borrowing one entry from an
over-full sibling over merging. A merge can only use a true sibling, one
sharing the direct parent, because the ancestor separator being removed
must live in that parent. Spilling and borrowing may reach further, to a
cousin found through a shared ancestor.

Every successful mutation bumps a version counter; range iterators
capture it at creation and report ErrConcurrentModification the next
time they notice it has changed.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
