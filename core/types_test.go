package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/core"
)

// sampleTree builds the canonical fixture:
//
//	    3
//	   / \
//	  9   20
//	     /  \
//	    15   7
func sampleTree() *core.Node[int] {
	return core.NewNode(3,
		core.Leaf(9),
		core.NewNode(20, core.Leaf(15), core.Leaf(7)),
	)
}

// leftChain builds a fully left-skewed tree n, n-1, …, 1.
func leftChain(n int) *core.Node[int] {
	var root *core.Node[int]
	for i := 1; i <= n; i++ {
		root = core.NewNode(i, root, nil)
	}

	return root
}

func TestLeaf_HasNoChildren(t *testing.T) {
	n := core.Leaf(42)
	assert.Equal(t, 42, n.Val)
	assert.Nil(t, n.Left, "leaf must have no left child")
	assert.Nil(t, n.Right, "leaf must have no right child")
}

func TestNewNode_WiresChildren(t *testing.T) {
	l, r := core.Leaf(1), core.Leaf(3)
	n := core.NewNode(2, l, r)
	assert.Same(t, l, n.Left)
	assert.Same(t, r, n.Right)
}

func TestPreorder_EmptyTree(t *testing.T) {
	got := core.Preorder[int](nil)
	assert.NotNil(t, got, "empty tree must yield an empty slice, not nil")
	assert.Empty(t, got)
}

func TestInorder_EmptyTree(t *testing.T) {
	got := core.Inorder[int](nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTraversals_SampleTree(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, []int{3, 9, 20, 15, 7}, core.Preorder(root), "preorder: root, left, right")
	assert.Equal(t, []int{9, 3, 15, 20, 7}, core.Inorder(root), "inorder: left, root, right")
}

func TestTraversals_LeftSkewed(t *testing.T) {
	root := leftChain(4) // 4 → 3 → 2 → 1, all left children
	assert.Equal(t, []int{4, 3, 2, 1}, core.Preorder(root))
	assert.Equal(t, []int{1, 2, 3, 4}, core.Inorder(root))
}

func TestSize_And_Height(t *testing.T) {
	assert.Equal(t, 0, core.Size[int](nil))
	assert.Equal(t, 0, core.Height[int](nil))

	assert.Equal(t, 1, core.Size(core.Leaf(7)))
	assert.Equal(t, 1, core.Height(core.Leaf(7)))

	root := sampleTree()
	assert.Equal(t, 5, core.Size(root))
	assert.Equal(t, 3, core.Height(root))

	assert.Equal(t, 6, core.Height(leftChain(6)), "skewed chain height equals node count")
}

func TestEqual(t *testing.T) {
	assert.True(t, core.Equal[int](nil, nil), "two empty trees are equal")
	assert.True(t, core.Equal(sampleTree(), sampleTree()))

	assert.False(t, core.Equal(sampleTree(), nil))
	assert.False(t, core.Equal(core.Leaf(1), core.Leaf(2)), "same shape, different key")

	// Same key multiset, different structure.
	a := core.NewNode(2, core.Leaf(1), nil)
	b := core.NewNode(2, nil, core.Leaf(1))
	assert.False(t, core.Equal(a, b))
}

func TestTraversals_StringKeys(t *testing.T) {
	root := core.NewNode("m", core.Leaf("a"), core.Leaf("z"))
	assert.Equal(t, []string{"m", "a", "z"}, core.Preorder(root))
	assert.Equal(t, []string{"a", "m", "z"}, core.Inorder(root))
}
