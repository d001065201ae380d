// Package degdiam explores the degree-diameter problem on small graphs by
// growing a base graph one vertex at a time and measuring every result.
//
// What is degdiam?
//
//	A pure-Go toolkit, single-threaded by design, built from:
//		• distmat/  — integer all-pairs distance matrices with degree
//		              bookkeeping, Floyd–Warshall bootstrap, O(n²)
//		              incremental update and an undo journal
//		• search/   — depth-first enumeration of one-vertex extensions
//		              under a maximum-degree bound, with exact counting
//		• seed/     — canonical base graphs (path, cycle, star, complete,
//		              wheel, cube, Petersen, sample)
//		• report/   — candidate sinks: best, queue, text dump, slog, fan-out
//		• metrics/  — Prometheus counters for searches and candidates
//		• cmd/ddsearch — the command-line front end
//
// For example, attaching a new vertex to two opposite corners of the
// 4-cycle yields a 5-vertex graph of maximum degree 3 and diameter 2:
//
//	ddsearch run --seed cycle --size 4 --max-degree 3
//
//	go install github.com/katalvlaran/degdiam/cmd/ddsearch@latest
package degdiam
