// SPDX-License-Identifier: MIT
// Package: report
//
// queue.go — FIFO of retained candidates for later processing.

package report

import "github.com/katalvlaran/degdiam/search"

// Queue retains reported candidates in arrival order.
type Queue struct {
	items []search.Candidate
	head  int

	// ConnectedOnly drops candidates with an infinite distance.
	ConnectedOnly bool

	// MaxDiameter, when positive, drops candidates with a larger diameter.
	MaxDiameter int
}

// Report implements search.Reporter.
func (q *Queue) Report(c search.Candidate) {
	if q.ConnectedOnly && !c.Connected {
		return
	}
	if q.MaxDiameter > 0 && c.Diameter > q.MaxDiameter {
		return
	}
	q.items = append(q.items, c.Retain())
}

// Len returns the number of queued candidates.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Pop removes and returns the oldest candidate.
func (q *Queue) Pop() (search.Candidate, bool) {
	if q.Len() == 0 {
		return search.Candidate{}, false
	}
	c := q.items[q.head]
	q.items[q.head] = search.Candidate{}
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}

	return c, true
}
