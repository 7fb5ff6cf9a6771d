package builder_test

import (
	"fmt"

	"github.com/katalvlaran/planarsep/builder"
	"github.com/katalvlaran/planarsep/face"
)

// ExampleBuild builds a wheel and inspects the hub's rotation.
func ExampleBuild() {
	g, err := builder.Build(builder.Wheel(6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.EdgesCount(), face.Count(g))
	fmt.Println(g.Rotation(builder.CenterVertex))
	// Output:
	// 6 10 6
	// [0 1 2 3 4]
}

// ExampleRandomTree generates a reproducible random tree.
func ExampleRandomTree() {
	g, err := builder.Build(builder.RandomTree(10), builder.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.EdgesCount(), g.Validate() == nil)
	// Output:
	// 10 9 true
}

// ExampleRandomGraph keeps every edge of the triangulated tree.
func ExampleRandomGraph() {
	g, err := builder.Build(builder.RandomGraph(8, 1), builder.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.Validate() == nil, g.Size()-g.EdgesCount()+face.Count(g))
	// Output:
	// 8 true 2
}
