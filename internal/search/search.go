package search

import "fmt"

// NotFound is returned by every strategy when the target is absent.
const NotFound = -1

// List is an ordered, indexable sequence of names.
type List interface {
	Len() int
	At(i int) string
}

// BrandList is the list of brand names fetched for a single request.
type BrandList []string

func (b BrandList) Len() int         { return len(b) }
func (b BrandList) At(i int) string { return b[i] }

// Strategy reports the zero-based index of the first element equal to
// target, or NotFound.
type Strategy func(items List, target string) int

// Iterative scans items with a single forward loop.
func Iterative(items List, target string) int {
	n := items.Len()
	for i := 0; i < n; i++ {
		if items.At(i) == target {
			return i
		}
	}
	return NotFound
}

// Recursive scans items by calling itself once per element.
func Recursive(items List, target string) int {
	return recursiveStep(items, target, 0)
}

func recursiveStep(items List, target string, pos int) int {
	if pos >= items.Len() {
		return NotFound
	}
	if items.At(pos) == target {
		return pos
	}
	return recursiveStep(items, target, pos+1)
}

// Named pairs a strategy with the label used in output and charts.
type Named struct {
	Name  string
	Label string
	Fn    Strategy
}

const (
	NameRecursive = "recursive"
	NameIterative = "iterative"
)

var strategies = []Named{
	{Name: NameRecursive, Label: "Recursive Search", Fn: Recursive},
	{Name: NameIterative, Label: "Iterative Search", Fn: Iterative},
}

// All returns the known strategies, recursive first.
func All() []Named {
	out := make([]Named, len(strategies))
	copy(out, strategies)
	return out
}

// FormatPosition renders a result index for display.
func FormatPosition(pos int) string {
	if pos == NotFound {
		return "Not Found"
	}
	return fmt.Sprintf("%d", pos)
}
