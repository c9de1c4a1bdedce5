// Package lvltree is your in-memory playground for rebuilding and
// validating binary trees — from the shared node primitives to
// traversal-driven reconstruction and BST verification.
//
// 🚀 What is lvltree?
//
//	A small, thread-safe-by-immutability, zero-dependency library that brings together:
//		• Core primitives: a generic binary-tree Node, traversals & measurements
//		• Reconstruction: rebuild the unique tree from its preorder + inorder traversals
//		• Validation: verify the binary-search-tree ordering invariant
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – fail-fast precondition checks, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Linear-time – O(n) reconstruction (index map) and O(n) validation (bounds propagation)
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — fundamental generic Node type, preorder/inorder traversals, Size/Height/Equal
//	rebuild/ — preorder+inorder reconstruction (recursive index-map & iterative stack strategies)
//	bst/     — binary-search-tree ordering validation via bounds propagation
//
// Quick ASCII example:
//
//	    3
//	   / \
//	  9   20
//	     /  \
//	    15   7
//
//	preorder = [3 9 20 15 7], inorder = [9 3 15 20 7] — rebuild recovers exactly this tree.
//
// Dive into each package's doc.go and example_test.go for full walkthroughs,
// complexity notes, and the error register.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
