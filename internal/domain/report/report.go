// Package report holds the ordered, run-scoped log of validation findings.
package report

import (
	"iter"

	"github.com/google/uuid"
)

// Kind classifies where a finding came from.
type Kind string

const (
	KindContainer  Kind = "container"
	KindStructural Kind = "structural"
	KindContent    Kind = "content"
	KindEntity     Kind = "entity"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Error is one validation finding. Subject is either a record identifier or
// a structural location label.
type Error struct {
	Message string
	Subject string
	Kind    Kind
}

// Log is an append-only sequence of findings for one validation run. It is
// owned by a single goroutine for the duration of the run.
type Log struct {
	name   string
	runID  string
	errors []Error
}

// New returns an empty Log tagged with the run name.
func New(name string) *Log {
	return &Log{name: name, runID: uuid.NewString()}
}

// Name returns the run name.
func (l *Log) Name() string {
	return l.name
}

// RunID returns the identifier assigned to this run.
func (l *Log) RunID() string {
	return l.runID
}

// Add appends e. Duplicates are kept.
func (l *Log) Add(e Error) {
	l.errors = append(l.errors, e)
}

// AddAll appends every finding of seq in order.
func (l *Log) AddAll(seq iter.Seq[Error]) {
	for e := range seq {
		l.Add(e)
	}
}

// HasErrors reports whether any finding was recorded.
func (l *Log) HasErrors() bool {
	return len(l.errors) > 0
}

// Len returns the number of findings.
func (l *Log) Len() int {
	return len(l.errors)
}

// All yields the findings in insertion order. The sequence can be ranged
// over any number of times.
func (l *Log) All() iter.Seq[Error] {
	return func(yield func(Error) bool) {
		for _, e := range l.errors {
			if !yield(e) {
				return
			}
		}
	}
}

// CountByKind returns the number of findings per kind.
func (l *Log) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range l.errors {
		counts[e.Kind]++
	}
	return counts
}
