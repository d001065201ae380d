// SPDX-License-Identifier: MIT
// Package: distmat
//
// journal.go — undo log for in-place depth-first search.
//
// While journaling is enabled, every mutation of a distance pair, a degree,
// the edge counter or the running maximum degree first appends the old value
// to m.journal. Rollback(mark) pops records back to mark in LIFO order, which
// restores the exact state observed when Mark returned.
//
// The journal slice is reused for the whole search, so after warm-up a
// mutate/undo cycle does not allocate.

package distmat

// Mark is a position in the undo journal.
type Mark int

// EnableJournal starts logging writes. The journal is reset.
func (m *Matrix) EnableJournal() {
	m.journaling = true
	m.journal = m.journal[:0]
}

// DisableJournal stops logging writes and drops pending records.
func (m *Matrix) DisableJournal() {
	m.journaling = false
	m.journal = m.journal[:0]
}

// Journaling reports whether writes are being logged.
func (m *Matrix) Journaling() bool { return m.journaling }

// Mark returns the current journal position.
func (m *Matrix) Mark() Mark { return Mark(len(m.journal)) }

// Rollback undoes every journaled write made after mk.
// It panics if mk is ahead of the journal, which means Mark and Rollback
// were not paired.
func (m *Matrix) Rollback(mk Mark) {
	if int(mk) > len(m.journal) || mk < 0 {
		panic(opErrorf("distmat.Rollback", "mark %d beyond journal len %d", mk, len(m.journal)))
	}
	for p := len(m.journal) - 1; p >= int(mk); p-- {
		u := m.journal[p]
		switch u.kind {
		case undoCell:
			m.dist[u.i*m.n+u.j] = u.old
			m.dist[u.j*m.n+u.i] = u.old
		case undoDegree:
			m.deg[u.i] = u.old
		case undoEdges:
			m.edges = u.old
		case undoMaxDeg:
			m.maxDeg = u.old
		}
	}
	m.journal = m.journal[:mk]
}

// setPair writes d into both (i,j) and (j,i).
func (m *Matrix) setPair(i, j, d int) {
	if m.journaling {
		m.journal = append(m.journal, undo{kind: undoCell, i: i, j: j, old: m.dist[i*m.n+j]})
	}
	m.dist[i*m.n+j] = d
	m.dist[j*m.n+i] = d
}

func (m *Matrix) setDegree(v, k int) {
	if m.journaling {
		m.journal = append(m.journal, undo{kind: undoDegree, i: v, old: m.deg[v]})
	}
	m.deg[v] = k
}

func (m *Matrix) setEdges(e int) {
	if m.journaling {
		m.journal = append(m.journal, undo{kind: undoEdges, old: m.edges})
	}
	m.edges = e
}

func (m *Matrix) setMaxDegree(k int) {
	if m.journaling {
		m.journal = append(m.journal, undo{kind: undoMaxDeg, old: m.maxDeg})
	}
	m.maxDeg = k
}
