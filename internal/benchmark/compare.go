package benchmark

// RecursiveOverhead returns how much slower the recursive mean is than the
// iterative one, as a percentage. Negative means recursion was faster.
func (r Record) RecursiveOverhead() float64 {
	return overhead(r.Recursive, r.Iterative)
}

func overhead(rec, it float64) float64 {
	if it <= 0 {
		return 0
	}
	return (rec - it) / it * 100
}

// Summary aggregates a set of records.
type Summary struct {
	Count         int
	MeanRecursive float64
	MeanIterative float64
	Found         int
}

// Summarize averages the per-record means. An empty slice yields a zero
// Summary.
func Summarize(records []Record) Summary {
	s := Summary{Count: len(records)}
	if s.Count == 0 {
		return s
	}
	for _, r := range records {
		s.MeanRecursive += r.Recursive
		s.MeanIterative += r.Iterative
		if r.Position >= 0 {
			s.Found++
		}
	}
	s.MeanRecursive /= float64(s.Count)
	s.MeanIterative /= float64(s.Count)
	return s
}

// RecursiveOverhead is the percentage difference of the averaged means.
func (s Summary) RecursiveOverhead() float64 {
	return overhead(s.MeanRecursive, s.MeanIterative)
}
