// Package distmat maintains all-pairs shortest-path distance matrices of
// small simple undirected graphs while they grow one vertex at a time.
//
// What:
//
//   - Matrix: an n×n integer distance matrix with a parallel degree array,
//     an edge counter and a running maximum degree.
//   - FloydWarshall: full O(n³) recomputation, used once to bootstrap a base graph.
//   - Extend: copies a matrix into an (n+1)-vertex matrix whose last vertex
//     is isolated.
//   - RecomputeLast: O(n²) recomputation after edges were attached to the
//     last vertex only.
//   - Mark/Rollback: an undo journal that restores every journaled write,
//     so a depth-first search can mutate one matrix in place and undo.
//   - Diameter, SumOfDistances, Connected, MaxDegree: statistics.
//
// Why:
//
//   - Degree/diameter experiments enumerate millions of one-vertex
//     extensions; recomputing APSP from scratch on each one is wasteful
//     when only the last vertex's adjacency changed.
//
// Conventions:
//
//   - Infinity marks "no path"; arithmetic never adds two infinite values.
//   - Distances are symmetric with a zero diagonal; cells equal to 1 are edges.
//
// Errors:
//
//   - Constructors validate caller input and return sentinel errors
//     (ErrBadShape, ErrAsymmetry, ErrNonZeroDiagonal, ...), wrapped with
//     the operation name; match them with errors.Is.
//   - Index accessors and mutators used in hot loops panic on contract
//     violations (bad indices), the same way slice indexing does.
//
// Complexity:
//
//   - FloydWarshall:  Time O(n³), Memory O(1)
//   - RecomputeLast:  Time O(n²), Memory O(deg(last)) scratch, reused
//   - Extend, Clone:  Time O(n²), Memory O(n²)
//   - Rollback:       Time O(#writes since mark)
package distmat
