package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/planarsep/bfs"
	"github.com/katalvlaran/planarsep/core"
)

// ExampleColorConnectedComponents colors a star: every vertex gets color 0.
func ExampleColorConnectedComponents() {
	g, err := core.FromOrderedAdjacencies([][]int{{1, 2, 3, 4}, {0}, {0}, {0}, {0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bfs.ColorConnectedComponents(g))
	// Output:
	// [0 0 0 0 0]
}

// ExampleResult_Levels shows BFS layering of a 4-cycle.
func ExampleResult_Levels() {
	g, err := core.FromOrderedAdjacencies([][]int{{1, 3}, {2, 0}, {3, 1}, {0, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.Tree(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Levels())
	// Output:
	// [[0] [1 3] [2]]
}
