package ranker

import (
	"github.com/Ahmed-Sermani/linkrank/corpus"
	"golang.org/x/xerrors"
)

// Sampler estimates PageRank scores by simulating the random surfer
// for a fixed number of steps and measuring how often each page is
// visited. The estimate converges in probability to the fixed point
// computed by Iterator as the sample count grows.
type Sampler struct {
	cfg Config
}

// NewSampler returns a new Sampler instance using the provided config
// options.
func NewSampler(cfg Config) (*Sampler, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("sampler config validation failed: %w", err)
	}
	return &Sampler{cfg: cfg}, nil
}

// SampleCount returns the number of surfer steps each estimation
// simulates, after config defaulting.
func (s *Sampler) SampleCount() int { return s.cfg.SampleCount }

// Estimate runs a random walk of SampleCount steps over the corpus and
// returns the visit frequency of every page. The first step lands on a
// page chosen uniformly at random; every following step is drawn from
// the transition model of the current page.
func (s *Sampler) Estimate(g *corpus.Graph) (Distribution, error) {
	if g.Len() == 0 {
		return nil, xerrors.Errorf("sampling estimator: %w", ErrEmptyCorpus)
	}

	var (
		pages  = g.Pages()
		visits = make(map[string]int, len(pages))
	)

	cur := pages[s.cfg.Rand.Intn(len(pages))]
	visits[cur]++

	for step := 1; step < s.cfg.SampleCount; step++ {
		dist, err := Transition(g, cur, s.cfg.DampingFactor)
		if err != nil {
			return nil, xerrors.Errorf("sampling estimator at step %d: %w", step, err)
		}
		cur = pickWeighted(s.cfg.Rand, pages, dist)
		visits[cur]++
	}

	est := make(Distribution, len(pages))
	for _, p := range pages {
		est[p] = float64(visits[p]) / float64(s.cfg.SampleCount)
	}

	if err := est.validate(); err != nil {
		return nil, xerrors.Errorf("sampling estimator: %w", err)
	}
	return est, nil
}

// pickWeighted draws one page from the categorical distribution given
// by weights. Pages are scanned in their lexicographic order so that
// an injected deterministic Source yields reproducible walks.
func pickWeighted(src Source, pages []string, weights Distribution) string {
	r := src.Float64()
	var acc float64
	for _, p := range pages {
		acc += weights[p]
		if r < acc {
			return p
		}
	}
	// r may exceed the accumulated total by a floating-point hair.
	return pages[len(pages)-1]
}

// SampleRank estimates the PageRank scores of every page in g by
// drawing n samples with the provided damping factor.
func SampleRank(g *corpus.Graph, damping float64, n int) (Distribution, error) {
	if n < 1 {
		return nil, xerrors.Errorf("sample count must be at least 1; got %d: %w", n, ErrInvalidParameter)
	}
	if damping <= 0 || damping >= 1 {
		return nil, xerrors.Errorf("damping factor must be in the range (0, 1); got %v: %w", damping, ErrInvalidParameter)
	}
	s, err := NewSampler(Config{DampingFactor: damping, SampleCount: n})
	if err != nil {
		return nil, err
	}
	return s.Estimate(g)
}
