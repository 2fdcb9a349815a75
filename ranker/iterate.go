package ranker

import (
	"math"

	"github.com/Ahmed-Sermani/linkrank/corpus"
	"golang.org/x/xerrors"
)

// Iterator estimates PageRank scores deterministically by applying the
// PageRank recurrence as a power iteration until the largest per-page
// change between two consecutive iterations drops below the configured
// convergence threshold.
type Iterator struct {
	cfg Config
}

// NewIterator returns a new Iterator instance using the provided
// config options.
func NewIterator(cfg Config) (*Iterator, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("iterator config validation failed: %w", err)
	}
	return &Iterator{cfg: cfg}, nil
}

// Estimate solves the PageRank recurrence over g. Every page starts
// with an even share of the total score; each iteration recomputes the
// score of every page from the previous scores of its parents. Pages
// without outgoing links contribute nothing to anyone under this
// recurrence, so the final scores are normalized to make the
// distribution sum to exactly 1 again.
func (it *Iterator) Estimate(g *corpus.Graph) (Distribution, error) {
	if g.Len() == 0 {
		return nil, xerrors.Errorf("iterative estimator: %w", ErrEmptyCorpus)
	}

	var (
		pages    = g.Pages()
		numPages = float64(len(pages))
		parents  = parentIndex(g)
		teleport = (1.0 - it.cfg.DampingFactor) / numPages
		ranks    = make(Distribution, len(pages))
	)
	for _, p := range pages {
		ranks[p] = 1.0 / numPages
	}

	for iter := 0; iter < it.cfg.MaxIterations; iter++ {
		// The previous scores are snapshotted so that every new score
		// is computed from the same iteration, independent of the
		// order the pages are visited in.
		prev := ranks
		ranks = make(Distribution, len(pages))

		var maxDelta float64
		for _, p := range pages {
			var backlinks float64
			for _, parent := range parents[p] {
				degree, _ := g.OutDegree(parent)
				backlinks += prev[parent] / float64(degree)
			}
			score := teleport + it.cfg.DampingFactor*backlinks
			ranks[p] = score
			if delta := math.Abs(score - prev[p]); delta > maxDelta {
				maxDelta = delta
			}
		}

		if maxDelta < it.cfg.MinDeltaForConvergence {
			normalize(ranks)
			if err := ranks.validate(); err != nil {
				return nil, xerrors.Errorf("iterative estimator: %w", err)
			}
			return ranks, nil
		}
	}

	return nil, xerrors.Errorf("iterative estimator gave up after %d iterations: %w", it.cfg.MaxIterations, ErrNotConverged)
}

// parentIndex inverts the link graph, mapping every page to the sorted
// list of pages that link to it.
func parentIndex(g *corpus.Graph) map[string][]string {
	parents := make(map[string][]string, g.Len())
	for _, p := range g.Pages() {
		out, _ := g.OutLinks(p)
		for _, dst := range out {
			parents[dst] = append(parents[dst], p)
		}
	}
	return parents
}

// normalize rescales the distribution so its values sum to exactly 1,
// correcting the residual floating-point drift accumulated over the
// iterations.
func normalize(d Distribution) {
	sum := d.Sum()
	for p, v := range d {
		d[p] = v / sum
	}
}

// IterateRank computes the PageRank scores of every page in g with the
// provided damping factor using the default convergence threshold and
// iteration cap.
func IterateRank(g *corpus.Graph, damping float64) (Distribution, error) {
	if damping <= 0 || damping >= 1 {
		return nil, xerrors.Errorf("damping factor must be in the range (0, 1); got %v: %w", damping, ErrInvalidParameter)
	}
	it, err := NewIterator(Config{DampingFactor: damping})
	if err != nil {
		return nil, err
	}
	return it.Estimate(g)
}
