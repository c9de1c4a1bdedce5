package rebuild_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvltree/core"
	"github.com/katalvlaran/lvltree/rebuild"
)

// ExampleRebuild reconstructs the classic tree
//
//	    3
//	   / \
//	  9   20
//	     /  \
//	    15   7
//
// from its two traversals and shows that the result round-trips.
func ExampleRebuild() {
	preorder := []int{3, 9, 20, 15, 7}
	inorder := []int{9, 3, 15, 20, 7}

	root, err := rebuild.Rebuild(preorder, inorder, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("root:    ", root.Val)
	fmt.Println("preorder:", core.Preorder(root))
	fmt.Println("inorder: ", core.Inorder(root))

	// Output:
	// root:     3
	// preorder: [3 9 20 15 7]
	// inorder:  [9 3 15 20 7]
}

// ExampleRebuild_iterativeStack selects the stack-based strategy, the
// choice for very deep trees where recursion depth is a concern.
func ExampleRebuild_iterativeStack() {
	opts := rebuild.DefaultOptions()
	opts.Strategy = rebuild.IterativeStack

	root, err := rebuild.Rebuild([]int{1, 2, 3}, []int{3, 2, 1}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("inorder:", core.Inorder(root))
	fmt.Println("height: ", core.Height(root))

	// Output:
	// inorder: [3 2 1]
	// height:  3
}

// ExampleRebuild_badInput demonstrates the fail-fast precondition check:
// the traversals below disagree on their key sets.
func ExampleRebuild_badInput() {
	_, err := rebuild.Rebuild([]int{1, 2, 9}, []int{2, 1, 3}, nil)
	fmt.Println(errors.Is(err, rebuild.ErrValueMismatch))

	// Output:
	// true
}
