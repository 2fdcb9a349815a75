// Package report renders rank distributions as the textual PageRank
// report. Formatting lives here so the estimators themselves never
// print anything.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Ahmed-Sermani/linkrank/ranker"
	"golang.org/x/xerrors"
)

// Sampling writes the report for a distribution produced by the
// sampling estimator with n samples.
func Sampling(w io.Writer, dist ranker.Distribution, n int) error {
	return write(w, fmt.Sprintf("PageRank Results from Sampling (n = %d)", n), dist)
}

// Iteration writes the report for a distribution produced by the
// iterative estimator.
func Iteration(w io.Writer, dist ranker.Distribution) error {
	return write(w, "PageRank Results from Iteration", dist)
}

// write emits the title followed by one indented line per page, with
// ranks formatted to 4 decimal digits in lexicographic page order.
func write(w io.Writer, title string, dist ranker.Distribution) error {
	pages := make([]string, 0, len(dist))
	for p := range dist {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	if _, err := fmt.Fprintln(w, title); err != nil {
		return xerrors.Errorf("writing rank report: %w", err)
	}
	for _, p := range pages {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", p, dist[p]); err != nil {
			return xerrors.Errorf("writing rank report: %w", err)
		}
	}
	return nil
}
