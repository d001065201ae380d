// Command ddsearch runs one-vertex extension searches for the
// degree/diameter problem.
//
// Usage:
//
//	ddsearch run --seed petersen --max-degree 4
//	ddsearch run --seed cycle --size 9 --max-degree 3 --report all
//	ddsearch run --config run.yaml --metrics
//	ddsearch count --seed sample --max-degree 3
//	ddsearch seeds
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
