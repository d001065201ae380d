// Package seed builds the canonical base graphs that extension searches
// start from: paths, cycles, stars, complete graphs, wheels, the cube,
// the Petersen graph and a small five-vertex sample.
//
// Every constructor returns a Seed (vertex count plus a deterministic,
// lexicographically emitted edge list); Seed.Matrix resolves it into a
// distmat.Matrix. Build looks seeds up by name for the CLI and run files.
package seed
