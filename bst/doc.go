// Package bst validates the binary-search-tree ordering invariant over a
// core.Node tree.
//
// What:
//
//   - Validate(root): true iff for every node, all keys in its left subtree
//     are strictly less than the node's key and all keys in its right
//     subtree are strictly greater — transitively for the whole tree, not
//     just each node's immediate children. An empty tree is valid.
//
// Why:
//
//   - Comparing only parent and child is insufficient: a grandchild can be
//     ordered relative to its parent yet violate an ancestor's range. The
//     check therefore carries a shrinking open interval (low, high) of
//     admissible keys down the recursion; descending left tightens the
//     upper bound to the current key, descending right tightens the lower
//     bound. One pass enforces the transitive constraint.
//
//   - Bounds are carried as optional pointers (nil = unbounded) rather than
//     min/max sentinels of the key type, so trees containing the type's
//     extreme values (math.MinInt64, math.MaxInt64, ...) validate without
//     false rejection.
//
// Complexity:
//
//   - Time:   O(n) — each node is inspected exactly once, short-circuiting
//     on the first violation.
//   - Memory: O(h) recursion stack (h = tree height).
//
// Functions:
//
//   - Validate(root *core.Node[K]) bool
//
// See example_test.go for positive and negative cases.
package bst
