package bptree

import (
	"cmp"
	"fmt"
)

// PrettyPrint writes a hierarchical dump of the tree to stdout. It exists
// for interactive debugging and tests, ported from the original engine's
// traverse().
func (t *Tree[K, V]) PrettyPrint() {
	if t.root == nil {
		fmt.Println("(empty tree)")
		return
	}
	t.printNode(t.root, "", true)
}

func (t *Tree[K, V]) printNode(n *node[K, V], prefix string, isLast bool) {
	if n == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := "INTERNAL"
	switch {
	case n == t.root:
		label = "ROOT"
	case n.leaf:
		label = "LEAF"
	}

	fmt.Printf("%s%s%s [", prefix, connector, label)
	for i, key := range n.keys {
		if i > 0 {
			fmt.Print(", ")
		}
		if n.leaf {
			fmt.Printf("%v:%v", key, n.values[i])
		} else {
			fmt.Printf("%v", key)
		}
	}
	fmt.Println("]")

	if n.leaf {
		return
	}

	childPrefix := prefix
	if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}
	for i, child := range n.children {
		t.printNode(child, childPrefix, i == len(n.children)-1)
	}
}

// checkInvariants walks the whole tree and verifies its structural
// invariants. It is used by tests, not by production code paths — a
// passing public operation should never leave the tree in a state this
// rejects.
func (t *Tree[K, V]) checkInvariants() error {
	if t.root == nil {
		return nil
	}

	leafDepth := -1
	var walk func(n *node[K, V], depth int, lo, hi *K) error
	walk = func(n *node[K, V], depth int, lo, hi *K) error {
		for i := 1; i < len(n.keys); i++ {
			if cmp.Compare(n.keys[i-1], n.keys[i]) >= 0 {
				return fmt.Errorf("keys out of order at depth %d: %v", depth, n.keys)
			}
		}
		if lo != nil && len(n.keys) > 0 && cmp.Compare(n.keys[0], *lo) < 0 {
			return fmt.Errorf("node key %v below lower bound %v", n.keys[0], *lo)
		}
		if hi != nil && len(n.keys) > 0 && cmp.Compare(n.keys[len(n.keys)-1], *hi) >= 0 {
			return fmt.Errorf("node key %v at or above upper bound %v", n.keys[len(n.keys)-1], *hi)
		}

		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmt.Errorf("leaf depth mismatch: expected %d, got %d", leafDepth, depth)
			}
			if n != t.root {
				if len(n.keys) < minLeafKeys(t.order) || len(n.keys) > maxKeys(t.order) {
					return fmt.Errorf("leaf key count %d out of [%d,%d]", len(n.keys), minLeafKeys(t.order), maxKeys(t.order))
				}
			}
			return nil
		}

		if len(n.children) != len(n.keys)+1 {
			return fmt.Errorf("internal node has %d children but %d keys", len(n.children), len(n.keys))
		}
		if n != t.root {
			if len(n.keys) < minInternalKeys(t.order) || len(n.keys) > maxKeys(t.order) {
				return fmt.Errorf("internal key count %d out of [%d,%d]", len(n.keys), minInternalKeys(t.order), maxKeys(t.order))
			}
		}

		for i, child := range n.children {
			var childLo, childHi *K
			if i > 0 {
				childLo = &n.keys[i-1]
			} else {
				childLo = lo
			}
			if i < len(n.keys) {
				childHi = &n.keys[i]
			} else {
				childHi = hi
			}
			if err := walk(child, depth+1, childLo, childHi); err != nil {
				return err
			}
			// invariant 5: every internal separator equals the first key
			// of the leftmost leaf of its right subtree. keys[i-1]
			// separates children[i-1] (left) from children[i] (right).
			if i > 0 {
				if got := leftmostKey(child); cmp.Compare(got, n.keys[i-1]) != 0 {
					return fmt.Errorf("separator %v does not match right subtree's first key %v", n.keys[i-1], got)
				}
			}
		}
		return nil
	}

	if err := walk(t.root, 0, nil, nil); err != nil {
		return err
	}

	// leaf chain must thread every leaf in strictly ascending order.
	var prevKey *K
	for l := t.FirstLeaf(); l != nil; l = l.next {
		for _, k := range l.keys {
			if prevKey != nil && cmp.Compare(*prevKey, k) >= 0 {
				return fmt.Errorf("leaf chain out of order: %v then %v", *prevKey, k)
			}
			kk := k
			prevKey = &kk
		}
	}

	return nil
}
