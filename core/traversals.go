// Package core - traversal and measurement helpers over *Node trees.
//
// Only the two traversals the reconstruction algorithm is defined on are
// provided: preorder (root, left, right) and inorder (left, root, right).
// Both return a non-nil slice so an empty tree yields []K{}, not nil.
package core

import "cmp"

// Preorder returns the preorder traversal of the tree rooted at root:
// root first, then the left subtree, then the right subtree.
// Time Complexity: O(n). Memory: O(h) recursion + O(n) output.
func Preorder[K cmp.Ordered](root *Node[K]) []K {
	out := make([]K, 0, Size(root)) // exact capacity, single allocation
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		out = append(out, n.Val) // visit root before either subtree
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}

// Inorder returns the inorder traversal of the tree rooted at root:
// left subtree first, then the root, then the right subtree.
// Time Complexity: O(n). Memory: O(h) recursion + O(n) output.
func Inorder[K cmp.Ordered](root *Node[K]) []K {
	out := make([]K, 0, Size(root))
	var walk func(n *Node[K])
	walk = func(n *Node[K]) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Val) // root between its subtrees
		walk(n.Right)
	}
	walk(root)

	return out
}

// Size returns the number of nodes in the tree rooted at root.
// An empty tree has size 0. Time Complexity: O(n).
func Size[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}

	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0; a single node has height 1.
// Time Complexity: O(n).
func Height[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}
	hl, hr := Height(root.Left), Height(root.Right)
	if hl > hr {
		return 1 + hl
	}

	return 1 + hr
}

// Equal reports whether trees a and b have identical structure and keys.
// Two empty trees are equal. Time Complexity: O(min(|a|,|b|)).
func Equal[K cmp.Ordered](a, b *Node[K]) bool {
	if a == nil || b == nil {
		return a == b // equal only when both absent
	}
	if a.Val != b.Val {
		return false
	}

	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
