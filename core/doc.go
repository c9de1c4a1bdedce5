// Package core defines the central binary-tree Node type shared by all
// lvltree algorithms, together with traversal and measurement helpers.
//
// 🚀 What is core?
//
//	The fundamental data model: a generic, pointer-linked binary tree of
//	totally-ordered keys. A nil *Node is the empty tree; every non-nil node
//	exclusively owns its two child subtrees (strict acyclic ownership, no
//	parent or sibling back-references).
//
// ✨ Key features:
//   - Node[K]: generic over any ordered key type (cmp.Ordered)
//   - Preorder / Inorder: the two traversals the rebuild package consumes
//   - Size / Height / Equal: structural measurements used by callers and tests
//   - Immutable by convention: nothing in lvltree mutates a node after its
//     children are assigned, so finished trees are safe to share across
//     goroutines for reading
//
// Complexity:
//
//   - Preorder, Inorder, Size, Equal: Time O(n), Memory O(h) recursion
//     (h = tree height, n worst-case for a skewed tree)
//   - Height: Time O(n), Memory O(h)
//
// See example_test.go for quick-start snippets.
package core
