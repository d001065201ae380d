// SPDX-License-Identifier: MIT
// Package: report
//
// best.go — keep the most efficient candidate.
//
// Order (strict, deterministic): connected before disconnected, then smaller
// diameter, then smaller sum of distances. The first candidate reported wins
// ties, so results follow the search's enumeration order.

package report

import "github.com/katalvlaran/degdiam/search"

// Best keeps the best candidate seen so far.
type Best struct {
	best  search.Candidate
	found bool
	seen  int
}

// Report implements search.Reporter.
func (b *Best) Report(c search.Candidate) {
	b.seen++
	if b.found && !better(c, b.best) {
		return
	}
	b.best = c.Retain()
	b.found = true
}

// Candidate returns the best retained candidate and whether any was reported.
func (b *Best) Candidate() (search.Candidate, bool) { return b.best, b.found }

// Seen returns the number of candidates reported to b.
func (b *Best) Seen() int { return b.seen }

// better reports whether a strictly beats b.
func better(a, b search.Candidate) bool {
	if a.Connected != b.Connected {
		return a.Connected
	}
	if a.Diameter != b.Diameter {
		return a.Diameter < b.Diameter
	}

	return a.SumOfDistances < b.SumOfDistances
}
