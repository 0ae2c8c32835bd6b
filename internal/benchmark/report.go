package benchmark

import (
	"fmt"
	"strings"

	"seqbench/internal/search"
)

// FormatSeconds renders a mean duration the way every output surface shows it.
func FormatSeconds(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// Markdown renders the records as a report with a summary and a table.
func Markdown(records []Record) string {
	var b strings.Builder
	s := Summarize(records)

	b.WriteString("# Recursive vs Iterative Search Time\n\n")
	if s.Count == 0 {
		b.WriteString("_No searches recorded yet._\n")
		return b.String()
	}

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Searches | %d |\n", s.Count)
	fmt.Fprintf(&b, "| Found | %d |\n", s.Found)
	fmt.Fprintf(&b, "| Mean recursive | %ss |\n", FormatSeconds(s.MeanRecursive))
	fmt.Fprintf(&b, "| Mean iterative | %ss |\n", FormatSeconds(s.MeanIterative))
	fmt.Fprintf(&b, "| Recursive overhead | %+.2f%% |\n\n", s.RecursiveOverhead())

	b.WriteString("| # | Brand | Position | List size | Iterations | Recursive (s) | Iterative (s) | Overhead |\n")
	b.WriteString("|---|-------|----------|-----------|------------|---------------|---------------|----------|\n")
	for _, r := range records {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %d | %s | %s | %+.2f%% |\n",
			r.Index, escapeCell(r.Brand), search.FormatPosition(r.Position),
			r.ListSize, r.Iterations, FormatSeconds(r.Recursive), FormatSeconds(r.Iterative), r.RecursiveOverhead())
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
