package ranker

import (
	"github.com/Ahmed-Sermani/linkrank/corpus"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution over which page a
// random surfer currently on page visits next.
//
// With probability damping the surfer follows one of the outgoing
// links of page, each with equal probability. With probability
// 1-damping the surfer teleports to a page chosen uniformly at random
// from the whole corpus. A dangling page (no outgoing links) yields
// the uniform distribution over all pages regardless of the damping
// value: a surfer on a dead-end always teleports.
func Transition(g *corpus.Graph, page string, damping float64) (Distribution, error) {
	if g.Len() == 0 {
		return nil, xerrors.Errorf("transition model: %w", ErrEmptyCorpus)
	}
	if damping <= 0 || damping >= 1 {
		return nil, xerrors.Errorf("transition model: damping factor must be in the range (0, 1); got %v: %w", damping, ErrInvalidParameter)
	}

	out, known := g.OutLinks(page)
	if !known {
		return nil, xerrors.Errorf("transition model from %q: %w", page, ErrUnknownPage)
	}

	var (
		pages = g.Pages()
		dist  = make(Distribution, len(pages))
	)

	if len(out) == 0 {
		uniform := 1.0 / float64(len(pages))
		for _, p := range pages {
			dist[p] = uniform
		}
	} else {
		teleport := (1.0 - damping) / float64(len(pages))
		follow := damping / float64(len(out))
		for _, p := range pages {
			dist[p] = teleport
		}
		for _, dst := range out {
			dist[dst] += follow
		}
	}

	if err := dist.validate(); err != nil {
		return nil, xerrors.Errorf("transition model from %q: %w", page, err)
	}
	return dist, nil
}
