// SPDX-License-Identifier: MIT
// Package: seed
//
// seed.go — constructors for canonical base graphs.
//
// Contract:
//   • Vertices are 0..N-1.
//   • Edges are emitted in a fixed order, each as (u, v) with u < v.
//   • Sizes below a constructor's minimum return ErrTooFewVertices.

package seed

import (
	"fmt"

	"github.com/katalvlaran/degdiam/distmat"
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minWheelNodes    = 4
)

// Seed is a base graph given by its vertex count and edge list.
type Seed struct {
	Name  string
	N     int
	Edges [][2]int
}

// Matrix resolves s into a distance matrix.
func (s Seed) Matrix() (*distmat.Matrix, error) {
	m, err := distmat.FromEdges(s.N, s.Edges)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", s.Name, err)
	}

	return m, nil
}

// Path returns the path 0-1-…-(n-1).
func Path(n int) (Seed, error) {
	if n < minPathNodes {
		return Seed{}, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	s := Seed{Name: "path", N: n}
	for i := 0; i+1 < n; i++ {
		s.Edges = append(s.Edges, [2]int{i, i + 1})
	}

	return s, nil
}

// Cycle returns the cycle C_n.
func Cycle(n int) (Seed, error) {
	if n < minCycleNodes {
		return Seed{}, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	s, _ := Path(n)
	s.Name = "cycle"
	s.Edges = append(s.Edges, [2]int{0, n - 1})

	return s, nil
}

// Star returns K_{1,n-1} with centre 0.
func Star(n int) (Seed, error) {
	if n < minStarNodes {
		return Seed{}, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	s := Seed{Name: "star", N: n}
	for i := 1; i < n; i++ {
		s.Edges = append(s.Edges, [2]int{0, i})
	}

	return s, nil
}

// Complete returns K_n.
func Complete(n int) (Seed, error) {
	if n < minCompleteNodes {
		return Seed{}, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	s := Seed{Name: "complete", N: n}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.Edges = append(s.Edges, [2]int{i, j})
		}
	}

	return s, nil
}

// Wheel returns W_n: hub 0 joined to every vertex of the rim cycle 1..n-1.
func Wheel(n int) (Seed, error) {
	if n < minWheelNodes {
		return Seed{}, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	s := Seed{Name: "wheel", N: n}
	for i := 1; i < n; i++ {
		s.Edges = append(s.Edges, [2]int{0, i})
	}
	for i := 1; i+1 < n; i++ {
		s.Edges = append(s.Edges, [2]int{i, i + 1})
	}
	s.Edges = append(s.Edges, [2]int{1, n - 1})

	return s, nil
}

// Cube returns the 3-cube Q_3; vertices are 3-bit labels, adjacent when
// they differ in one bit.
func Cube() Seed {
	s := Seed{Name: "cube", N: 8}
	for u := 0; u < 8; u++ {
		for b := 0; b < 3; b++ {
			if v := u ^ (1 << b); u < v {
				s.Edges = append(s.Edges, [2]int{u, v})
			}
		}
	}

	return s
}

// Petersen returns the Petersen graph: outer 5-cycle 0..4, spokes i–i+5,
// inner pentagram 5..9. It is the degree-3 diameter-2 Moore graph.
func Petersen() Seed {
	s := Seed{Name: "petersen", N: 10}
	for i := 0; i < 5; i++ {
		u, v := i, (i+1)%5
		s.Edges = append(s.Edges, [2]int{min(u, v), max(u, v)})
		s.Edges = append(s.Edges, [2]int{i, i + 5})
		u, v = 5+i, 5+(i+2)%5
		s.Edges = append(s.Edges, [2]int{min(u, v), max(u, v)})
	}

	return s
}

// Sample returns the five-vertex graph 0-1, 0-2, 1-2, 1-4, 2-3, 3-4
// (degrees 2 3 3 2 2).
func Sample() Seed {
	return Seed{
		Name:  "sample",
		N:     5,
		Edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 4}, {2, 3}, {3, 4}},
	}
}
