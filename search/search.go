// SPDX-License-Identifier: MIT
// Package: search
//
// search.go — depth-first enumeration of one-vertex extensions.
//
// State machine:
//   • A node is (attachment set S of the new vertex, next eligible index s).
//   • Transitions: attach i ∈ [s, last) and recurse with s = i+1, or skip i.
//   • A node is a leaf when s reaches last, or when the new vertex is
//     saturated; saturated targets are skipped.
//   • After its children, a node with S ≠ ∅ is reported (post-order).
//
// Every tentative edge is bracketed by Mark/Rollback on the single owned
// matrix, so each node sees exactly the state its parent had plus one edge.

package search

import (
	"fmt"

	"github.com/katalvlaran/degdiam/distmat"
)

// engine holds the hot-path state of one search.
type engine struct {
	g      *distmat.Matrix
	last   int // index of the new vertex
	maxDeg int

	rep   Reporter
	check bool

	attached []int // current attachment set, ascending
	stats    Stats
}

// Extend appends an isolated vertex to a copy of base and runs Search on
// it. base itself is never modified.
func Extend(base *distmat.Matrix, opts ...Option) (Stats, error) {
	if base == nil {
		return Stats{}, ErrNilGraph
	}

	return Search(base.Extend(), opts...)
}

// Search enumerates every admissible attachment set of the last vertex of
// g and reports each non-empty one. g must be an extension whose last vertex
// is still isolated; on return it is identical to its state on entry.
//
// The distances of g must already be shortest paths (FloydWarshall output,
// or an Extend of it). Only WithInvariantChecks verifies this, at O(n³);
// otherwise unresolved input yields wrong candidate statistics.
func Search(g *distmat.Matrix, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateInput(g, o.MaxDegree, o.CheckInvariants); err != nil {
		return Stats{}, err
	}

	e := &engine{
		g:        g,
		last:     g.N() - 1,
		maxDeg:   o.MaxDegree,
		rep:      o.Reporter,
		check:    o.CheckInvariants,
		attached: make([]int, 0, o.MaxDegree),
	}

	var before *distmat.Matrix
	if e.check {
		before = g.Clone()
	}
	// Marks are relative, so a caller that already journals keeps its log.
	if !g.Journaling() {
		g.EnableJournal()
		defer g.DisableJournal()
	}

	o.Logger.Debug("extension search started",
		"vertices", g.N(), "edges", g.Edges(), "max_degree", o.MaxDegree)

	e.extend(0)

	if e.check && !before.Equal(g) {
		panic(fmt.Errorf("%w: graph state differs after search", ErrInvariantViolated))
	}

	o.Logger.Info("extension search finished",
		"vertices", g.N(),
		"max_degree", o.MaxDegree,
		"nodes", e.stats.Nodes,
		"candidates", e.stats.Candidates,
		"saturated_prunes", e.stats.SaturatedPrunes,
		"target_prunes", e.stats.TargetPrunes,
		"max_depth", e.stats.MaxDepth)

	return e.stats, nil
}

// validateInput checks the contract of Search in a fixed order. resolved
// adds the O(n³) shortest-path check.
func validateInput(g *distmat.Matrix, maxDeg int, resolved bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if maxDeg < 1 {
		return fmt.Errorf("search: max degree %d: %w", maxDeg, ErrInvalidMaxDegree)
	}
	n := g.N()
	if n < 2 {
		return fmt.Errorf("search: n=%d: %w", n, ErrTooFewVertices)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if resolved {
		if err := g.ValidateResolved(); err != nil {
			return fmt.Errorf("search: %w", err)
		}
	}
	last := n - 1
	if g.Degree(last) != 0 {
		return fmt.Errorf("search: vertex %d has degree %d: %w", last, g.Degree(last), ErrNotIsolated)
	}
	for i := 0; i < last; i++ {
		if g.At(i, last) != distmat.Infinity {
			return fmt.Errorf("search: distance %d-%d is %d: %w", i, last, g.At(i, last), ErrNotIsolated)
		}
	}
	if g.MaxDegree() > maxDeg {
		return fmt.Errorf("search: base max degree %d > %d: %w", g.MaxDegree(), maxDeg, ErrDegreeBound)
	}

	return nil
}

// extend explores every attachment set that extends e.attached with
// vertices from [start, last), then reports e.attached itself.
func (e *engine) extend(start int) {
	e.stats.Nodes++
	if d := len(e.attached); d > e.stats.MaxDepth {
		e.stats.MaxDepth = d
	}

	for i := start; i < e.last; i++ {
		if e.g.Degree(e.last) >= e.maxDeg {
			e.stats.SaturatedPrunes++
			break
		}
		if e.g.Degree(i) >= e.maxDeg {
			e.stats.TargetPrunes++
			continue
		}

		mk := e.g.Mark()
		if err := e.g.Connect(i, e.last); err != nil {
			panic(fmt.Errorf("%w: attach %d: %v", ErrInvariantViolated, i, err))
		}
		e.g.RecomputeLast()
		e.attached = append(e.attached, i)

		e.extend(i + 1)

		e.attached = e.attached[:len(e.attached)-1]
		e.g.Rollback(mk)
		if e.check {
			e.verify()
		}
	}

	if len(e.attached) > 0 {
		e.emit()
	}
}

// emit reports the current state as a candidate.
func (e *engine) emit() {
	e.stats.Candidates++
	if e.check {
		e.verifyBound()
	}
	if e.rep == nil {
		return
	}
	e.rep.Report(Candidate{
		Graph:          e.g,
		Neighbors:      e.attached,
		Depth:          len(e.attached),
		MaxDegree:      e.g.MaxDegree(),
		Diameter:       e.g.Diameter(),
		SumOfDistances: e.g.SumOfDistances(),
		Edges:          e.g.Edges(),
		Connected:      e.g.Connected(),
	})
}

// verify panics if the matrix invariants or the attachment bookkeeping broke.
func (e *engine) verify() {
	if err := e.g.Validate(); err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariantViolated, err))
	}
	if k := e.g.Degree(e.last); k != len(e.attached) {
		panic(fmt.Errorf("%w: new vertex degree %d, attached %d", ErrInvariantViolated, k, len(e.attached)))
	}
}

// verifyBound panics if any degree exceeds the bound.
func (e *engine) verifyBound() {
	e.verify()
	if k := e.g.MaxDegree(); k > e.maxDeg {
		panic(fmt.Errorf("%w: max degree %d > bound %d", ErrInvariantViolated, k, e.maxDeg))
	}
}
