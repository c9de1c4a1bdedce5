// Package rebuild implements preorder+inorder binary-tree reconstruction.
// This file holds the public entry point, the precondition validation pass,
// and the primary recursive index-map strategy.
package rebuild

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// rebuildWalker encapsulates per-call state for the recursive strategy.
// The preorder cursor lives here, scoped to one Rebuild invocation, so the
// public function stays pure and safe for concurrent callers.
type rebuildWalker[K cmp.Ordered] struct {
	preorder []K       // preorder sequence, consumed left to right
	index    map[K]int // key → position in inorder
	cursor   int       // next unconsumed preorder element
}

// Rebuild returns the unique binary tree whose preorder and inorder
// traversals equal the given sequences. Empty inputs produce an empty tree
// (nil root, nil error). A nil opts selects DefaultOptions.
//
// Preconditions are validated up front in O(n): both sequences must have
// equal length and be permutations of the same set of distinct keys.
// Violations surface as ErrLengthMismatch, ErrDuplicateValue, or
// ErrValueMismatch. Sequences that pass the set checks but describe no
// single tree are detected during construction and surface as
// ErrInconsistentTraversals; no strategy ever returns a tree whose
// traversals differ from the inputs.
func Rebuild[K cmp.Ordered](preorder, inorder []K, opts *Options) (*core.Node[K], error) {
	// 1. Resolve options and reject undeclared strategies before any work
	dopts := DefaultOptions()
	if opts != nil {
		dopts = *opts
	}
	if dopts.Strategy != RecursiveIndexMap && dopts.Strategy != IterativeStack {
		return nil, ErrUnknownStrategy
	}

	// 2. Validate preconditions, building the inorder index map as we go
	index, err := validate(preorder, inorder)
	if err != nil {
		return nil, err
	}

	// 3. Empty tree short-circuit
	if len(preorder) == 0 {
		return nil, nil
	}

	// 4. Dispatch on strategy
	if dopts.Strategy == IterativeStack {
		return buildIterative(preorder, inorder)
	}
	w := &rebuildWalker[K]{preorder: preorder, index: index}

	return w.build(0, len(inorder)-1)
}

// validate checks the reconstruction preconditions and returns the
// key→index map over inorder used by the recursive strategy.
// Time Complexity: O(n). Memory: O(n).
func validate[K cmp.Ordered](preorder, inorder []K) (map[K]int, error) {
	// Length equality first: the cheapest check rules out most bad input.
	if len(preorder) != len(inorder) {
		return nil, ErrLengthMismatch
	}

	// Index inorder; a collision means a repeated key.
	index := make(map[K]int, len(inorder))
	for i, v := range inorder {
		if _, dup := index[v]; dup {
			return nil, ErrDuplicateValue
		}
		index[v] = i
	}

	// Every preorder key must appear in inorder, exactly once. With equal
	// lengths and distinct keys on both sides, this proves the two are
	// permutations of the same set.
	seen := make(map[K]struct{}, len(preorder))
	for _, v := range preorder {
		if _, ok := index[v]; !ok {
			return nil, ErrValueMismatch
		}
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateValue
		}
		seen[v] = struct{}{}
	}

	return index, nil
}

// build reconstructs the subtree occupying inorder positions [lo, hi].
// The next unconsumed preorder element is always this subtree's root;
// its inorder position splits the range into left and right children.
// Left recurses before right so preorder elements are consumed in order.
//
// The set checks in validate cannot rule out sequences in the right
// multiset but the wrong order, so the recursion itself verifies that
// every root lands inside its own inorder range; an escape means the two
// traversals describe no single tree.
func (w *rebuildWalker[K]) build(lo, hi int) (*core.Node[K], error) {
	// Base case: empty range, empty subtree, no preorder consumption.
	if lo > hi {
		return nil, nil
	}

	// Consume the subtree root from preorder.
	if w.cursor >= len(w.preorder) {
		return nil, ErrInconsistentTraversals
	}
	val := w.preorder[w.cursor]
	w.cursor++

	// Split point within inorder; O(1) thanks to the index map.
	// A root outside [lo, hi] proves the pair is inconsistent.
	mid := w.index[val]
	if mid < lo || mid > hi {
		return nil, ErrInconsistentTraversals
	}

	n := core.Leaf(val)
	var err error
	if n.Left, err = w.build(lo, mid-1); err != nil {
		return nil, err
	}
	if n.Right, err = w.build(mid+1, hi); err != nil {
		return nil, err
	}

	return n, nil
}
