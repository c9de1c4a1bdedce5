// Package core declares the Node type and its constructors.
//
// A *Node[K] is the universal tree handle across lvltree: rebuild produces
// one, bst consumes one, and a nil pointer everywhere denotes the empty tree.
package core

import "cmp"

// Node is a single binary-tree node holding a key of ordered type K.
//
// Left and Right are ownership slots: each points to the root of an
// exclusively-owned subtree, or is nil for an absent subtree. A Node is
// never shared between parents and carries no back-references, so any
// reachable structure is a strict acyclic hierarchy.
type Node[K cmp.Ordered] struct {
	// Val is the node's key. Keys are assumed distinct within one tree.
	Val K

	// Left is the root of the left subtree, or nil when absent.
	Left *Node[K]

	// Right is the root of the right subtree, or nil when absent.
	Right *Node[K]
}

// NewNode returns a node with the given key and child subtrees.
// Either child may be nil.
func NewNode[K cmp.Ordered](val K, left, right *Node[K]) *Node[K] {
	return &Node[K]{Val: val, Left: left, Right: right}
}

// Leaf returns a childless node holding val.
func Leaf[K cmp.Ordered](val K) *Node[K] {
	return &Node[K]{Val: val}
}
