// Package report holds the collaborators that consume candidates emitted by
// the extension search: keeping the best one, queueing retained copies,
// dumping them as text, logging them, and fanning out to several sinks.
//
// Every type here implements search.Reporter. Candidates arrive as live
// views of the search state; collaborators that keep anything call
// Candidate.Retain first.
package report
