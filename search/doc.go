// Package search enumerates one-vertex extensions of a graph under a
// maximum-degree bound.
//
// What:
//
//   - Extend(base): appends an isolated vertex to base and enumerates every
//     non-empty set of existing vertices it can be attached to without any
//     degree exceeding the bound. Each completed extension is reported as a
//     Candidate carrying its diameter, distance sum, edge count and degrees.
//   - Search(g): the same on a matrix that is already extended.
//   - CountExtensions / Binomial: the exact number of candidates a search
//     reports, from a Pascal-triangle table.
//
// How:
//
//   - Depth-first backtracking. Neighbours of the new vertex are chosen in
//     strictly increasing index order, so every attachment set is visited
//     once and no permutation of it is.
//   - One matrix is mutated in place. Each tentative edge is bracketed by
//     distmat Mark/Rollback, so shortest paths relaxed through the new vertex
//     are undone exactly, and the distances are kept current with the
//     O(n²) distmat RecomputeLast instead of a full Floyd–Warshall.
//   - Branches are pruned as soon as the new vertex, or a target vertex,
//     is saturated. Prunes are counted in Stats, never reported as errors.
//
// Errors:
//
//   - ErrInvalidMaxDegree, ErrTooFewVertices, ErrNotIsolated, ErrDegreeBound,
//     or a wrapped distmat validation error for bad input.
//   - An invariant violation detected with WithInvariantChecks panics with
//     ErrInvariantViolated: it is an implementation bug, not an input error.
//
// Complexity:
//
//   - Nodes visited: 1 + CountExtensions(g, maxDegree).
//   - Per node: O(n²) for RecomputeLast, plus O(n²) for statistics when a
//     candidate is reported.
//   - Memory: O(n²) journal in the worst case, reused; recursion depth ≤ maxDegree+1.
package search
