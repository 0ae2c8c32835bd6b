package benchmark

import (
	"time"

	"seqbench/internal/search"
)

// Result is the outcome of timing one strategy.
type Result struct {
	Strategy   string  `json:"strategy"`
	Iterations int     `json:"iterations"`
	Mean       float64 `json:"mean_seconds"` // Mean seconds per call
	Position   int     `json:"position"`     // From the final call
}

// Comparison holds both strategies timed against the same list and target.
type Comparison struct {
	Target    string `json:"target"`
	ListSize  int    `json:"list_size"`
	Recursive Result `json:"recursive"`
	Iterative Result `json:"iterative"`
}

// Record is one logged user-initiated search.
type Record struct {
	Index      int       `json:"index"`
	Brand      string    `json:"brand"`
	Recursive  float64   `json:"recursive_seconds"`
	Iterative  float64   `json:"iterative_seconds"`
	Position   int       `json:"position"`
	ListSize   int       `json:"list_size"`
	Iterations int       `json:"iterations"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecord builds an unindexed record from a comparison. Log.Append assigns
// the index.
func NewRecord(c Comparison, at time.Time) Record {
	return Record{
		Brand:      c.Target,
		Recursive:  c.Recursive.Mean,
		Iterative:  c.Iterative.Mean,
		Position:   c.Recursive.Position,
		ListSize:   c.ListSize,
		Iterations: c.Recursive.Iterations,
		CreatedAt:  at,
	}
}

// Mean returns the mean seconds per call recorded for the named strategy, or
// zero for an unknown name.
func (r Record) Mean(strategy string) float64 {
	switch strategy {
	case search.NameRecursive:
		return r.Recursive
	case search.NameIterative:
		return r.Iterative
	}
	return 0
}
