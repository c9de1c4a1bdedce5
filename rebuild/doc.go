// Package rebuild reconstructs the unique binary tree described by a
// preorder traversal and an inorder traversal of the same tree.
//
// What:
//
//   - Rebuild(preorder, inorder, opts): produce the one binary tree whose
//     own preorder and inorder traversals equal the inputs exactly.
//     Two strategies are available via Options.Strategy:
//   - RecursiveIndexMap (default): value→index map over inorder plus a
//     single preorder cursor; recursion over inorder index ranges.
//   - IterativeStack: explicit parent stack and inorder cursor; avoids
//     recursion depth proportional to tree height on deep skewed trees.
//   - Fail-fast precondition validation: mismatched lengths, duplicate
//     keys, or a key present in one traversal but not the other surface as
//     sentinel errors before any node is constructed. Pairs that pass the
//     set checks but describe no single tree are caught during the build
//     itself, never returned as a silently wrong tree.
//
// Why:
//
//   - Preorder visits a root before either of its subtrees, so the next
//     unconsumed preorder element is always the root of the subtree being
//     built. Inorder places a root between its subtrees, so the root's
//     inorder position splits the remaining range into left and right.
//     A hashmap lookup turns the per-root split search from O(n) into
//     O(1), giving the O(n) total bound (a map-free variant exists but
//     degrades to O(n²) on skewed trees and is not offered).
//
// Key Types & Constants:
//
//   - Strategy: RecursiveIndexMap, IterativeStack
//   - Options: holds Strategy; DefaultOptions() for the recommended setup
//
// Complexity:
//
//   - Time:   O(n) for either strategy (n = number of keys)
//   - Memory: O(n) for the index map (recursive) or parent stack
//     (iterative), plus O(h) recursion in the recursive strategy
//
// Errors:
//
//   - ErrLengthMismatch          preorder and inorder lengths differ
//   - ErrDuplicateValue          a key occurs more than once in either traversal
//   - ErrValueMismatch           a key occurs in one traversal but not the other
//   - ErrInconsistentTraversals  no single tree has both as its traversals
//   - ErrUnknownStrategy         Options.Strategy is not a declared Strategy
//
// Functions:
//
//   - Rebuild(preorder, inorder []K, opts *Options) (*core.Node[K], error)
//   - DefaultOptions() Options
//
// See example_test.go for worked reconstructions.
package rebuild
