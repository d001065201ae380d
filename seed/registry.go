// SPDX-License-Identifier: MIT
// Package: seed
//
// registry.go — name lookup for the CLI and run files.

package seed

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/degdiam/distmat"
)

// constructors maps seed names to builders; fixed seeds ignore n.
var constructors = map[string]func(n int) (Seed, error){
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"complete": Complete,
	"wheel":    Wheel,
	"cube":     func(int) (Seed, error) { return Cube(), nil },
	"petersen": func(int) (Seed, error) { return Petersen(), nil },
	"sample":   func(int) (Seed, error) { return Sample(), nil },
}

// Fixed reports whether the named seed ignores its size argument.
func Fixed(name string) bool {
	switch name {
	case "cube", "petersen", "sample":
		return true
	}

	return false
}

// Names returns the known seed names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the named seed of the given size.
func Lookup(name string, n int) (Seed, error) {
	ctor, ok := constructors[name]
	if !ok {
		return Seed{}, fmt.Errorf("seed %q: %w", name, ErrUnknownSeed)
	}

	return ctor(n)
}

// Build returns the resolved distance matrix of the named seed.
func Build(name string, n int) (*distmat.Matrix, error) {
	s, err := Lookup(name, n)
	if err != nil {
		return nil, err
	}

	return s.Matrix()
}
