// Package bst implements bounds-propagation validation of the BST invariant.
package bst

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// Validate reports whether the tree rooted at root satisfies the strict
// binary-search-tree ordering invariant. An empty tree is valid.
// Duplicate keys fail: the invariant requires strict inequalities.
//
// Complexity: Time O(n), Memory O(h) recursion stack.
func Validate[K cmp.Ordered](root *core.Node[K]) bool {
	// Initial interval is unbounded on both sides: nil means no constraint,
	// so the key type's own extreme values remain admissible.
	return inBounds(root, nil, nil)
}

// inBounds checks the subtree at n against the open interval (low, high),
// where a nil bound is unbounded. Left descent replaces high with the
// current key, right descent replaces low; both strictly exclusive.
func inBounds[K cmp.Ordered](n *core.Node[K], low, high *K) bool {
	// 1. Empty subtree: valid under any bounds.
	if n == nil {
		return true
	}

	// 2. The key must lie strictly inside (low, high).
	if low != nil && n.Val <= *low {
		return false
	}
	if high != nil && n.Val >= *high {
		return false
	}

	// 3. Recurse with tightened bounds; short-circuit on first violation.
	return inBounds(n.Left, low, &n.Val) && inBounds(n.Right, &n.Val, high)
}
