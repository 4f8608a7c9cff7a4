package bptree

import "cmp"

// Entry is a single key/value pair, the unit returned by range scans and
// full-tree iteration.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}
