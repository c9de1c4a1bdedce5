// Package rebuild - iterative stack-based reconstruction strategy.
package rebuild

import (
	"cmp"

	"github.com/katalvlaran/lvltree/core"
)

// buildIterative reconstructs the tree without recursion, using an explicit
// stack of nodes whose left subtrees may still be under construction.
//
// Walking preorder left to right, each new node is either the left child of
// the current stack top (still descending a left chain) or the right child
// of the deepest ancestor whose left subtree just finished. That ancestor
// is found by popping while the stack top equals the next inorder key:
// matching the inorder cursor means every key left of that node has been
// placed, so its left subtree is complete.
//
// The set preconditions are the caller's responsibility (see validate);
// inputs here are equal-length permutations of the same distinct key set,
// non-empty. Order consistency is verified here: nodes are popped exactly
// in the constructed tree's inorder sequence, so a pair describing no tree
// leaves keys unconsumed and surfaces as ErrInconsistentTraversals.
// Time Complexity: O(n) — each node is pushed and popped at most once.
// Memory: O(n) stack worst case (left-skewed tree).
func buildIterative[K cmp.Ordered](preorder, inorder []K) (*core.Node[K], error) {
	// 1. First preorder key is the overall root.
	root := core.Leaf(preorder[0])
	stack := []*core.Node[K]{root}
	cursor := 0 // next inorder key expected to finish a left subtree

	// 2. Place every remaining preorder key.
	var parent *core.Node[K]
	for _, val := range preorder[1:] {
		n := core.Leaf(val)

		// Pop ancestors whose left subtree is now complete.
		parent = nil
		for len(stack) > 0 && stack[len(stack)-1].Val == inorder[cursor] {
			parent = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cursor++
		}

		if parent != nil {
			parent.Right = n // left subtree done, descend right
		} else {
			stack[len(stack)-1].Left = n // still extending a left chain
		}
		stack = append(stack, n)
	}

	// 3. Drain the right spine: a consistent pair pops every node in
	//    inorder order, leaving the cursor at n and the stack empty.
	for len(stack) > 0 && stack[len(stack)-1].Val == inorder[cursor] {
		stack = stack[:len(stack)-1]
		cursor++
	}
	if cursor != len(inorder) {
		return nil, ErrInconsistentTraversals
	}

	return root, nil
}
