// SPDX-License-Identifier: MIT
// Package: report
//
// multi.go — fan-out to several reporters.

package report

import "github.com/katalvlaran/degdiam/search"

// Multi forwards every candidate to each non-nil reporter in order.
func Multi(rs ...search.Reporter) search.Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

type multi []search.Reporter

func (m multi) Report(c search.Candidate) {
	for _, r := range m {
		r.Report(c)
	}
}
