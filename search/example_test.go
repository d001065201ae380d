package search_test

import (
	"fmt"

	"github.com/katalvlaran/degdiam/distmat"
	"github.com/katalvlaran/degdiam/search"
)

// ExampleExtend attaches a sixth vertex to a five-vertex graph in every way
// that keeps all degrees at most three.
func ExampleExtend() {
	base, err := distmat.FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 4}})
	if err != nil {
		fmt.Println(err)
		return
	}

	stats, err := search.Extend(base,
		search.WithMaxDegree(3),
		search.WithReporter(search.ReporterFunc(func(c search.Candidate) {
			fmt.Printf("%v D=%d S=%d m=%d\n", c.Neighbors, c.Diameter, c.SumOfDistances, c.Edges)
		})),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("candidates:", stats.Candidates)
	// Output:
	// [0 3 4] D=2 S=21 m=9
	// [0 3] D=2 S=22 m=8
	// [0 4] D=2 S=22 m=8
	// [0] D=3 S=25 m=7
	// [3 4] D=3 S=23 m=8
	// [3] D=3 S=25 m=7
	// [4] D=3 S=25 m=7
	// candidates: 7
}
