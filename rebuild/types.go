// Package rebuild defines options and sentinel errors for binary-tree
// reconstruction from preorder and inorder traversals.
package rebuild

import "errors"

// Sentinel errors for reconstruction preconditions.
var (
	// ErrLengthMismatch indicates len(preorder) != len(inorder).
	ErrLengthMismatch = errors.New("rebuild: preorder and inorder lengths differ")

	// ErrDuplicateValue indicates a key occurs more than once in a traversal.
	// Reconstruction is defined only for trees with distinct keys.
	ErrDuplicateValue = errors.New("rebuild: duplicate key in traversal")

	// ErrValueMismatch indicates the traversals are not permutations of the
	// same key set: some key occurs in one but not the other.
	ErrValueMismatch = errors.New("rebuild: traversals contain different key sets")

	// ErrInconsistentTraversals indicates the sequences pass the set checks
	// (equal length, distinct keys, same key set) yet describe no single
	// binary tree: no tree has both as its preorder and inorder traversals.
	ErrInconsistentTraversals = errors.New("rebuild: traversals do not describe a consistent tree")

	// ErrUnknownStrategy indicates Options.Strategy holds an undeclared value.
	ErrUnknownStrategy = errors.New("rebuild: unknown reconstruction strategy")
)

// Strategy selects how Rebuild reconstructs the tree.
//
//   - RecursiveIndexMap — build a value→index map over inorder, then recurse
//     over inorder index ranges while consuming preorder through a single
//     cursor. O(n) time, O(n) map + O(h) recursion stack.
//
//   - IterativeStack — maintain an explicit stack of pending parents and an
//     inorder cursor; attach a node as a right child once the stack top
//     matches the next inorder key. O(n) time, O(n) stack, no recursion —
//     prefer for very deep skewed trees where stack depth is a concern.
type Strategy int

const (
	// RecursiveIndexMap strategy: index-map lookup + range recursion. The default.
	RecursiveIndexMap Strategy = iota

	// IterativeStack strategy: parent stack + inorder cursor, no recursion.
	IterativeStack
)

// Options configures tree reconstruction.
//
// Fields:
//   - Strategy — which reconstruction algorithm to run. Both produce the
//     identical tree; they differ only in how the call stack is managed.
//
// Example:
//
//	opts := rebuild.DefaultOptions()
//	opts.Strategy = rebuild.IterativeStack
//
//	root, err := rebuild.Rebuild(preorder, inorder, &opts)
//	if err != nil {
//	  // handle ErrLengthMismatch, ErrDuplicateValue or ErrValueMismatch
//	}
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns an Options struct with:
//   - RecursiveIndexMap strategy (the O(n) primary target)
func DefaultOptions() Options {
	return Options{
		Strategy: RecursiveIndexMap,
	}
}
