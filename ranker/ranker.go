/*
   Implemets Google famous and first
   PageRank algorithm https://en.wikipedia.org/wiki/PageRank
   over an immutable corpus link graph.
*/
package ranker

import (
	"math"

	"golang.org/x/xerrors"
)

/*
   PageRank works by counting the number and quality of links to
   a page to determine a rough estimate of how important the page is.
   The underlying assumption is that more important pages are likely
   to receive more links from other pages.

   To calculate the score for each page in the corpus,
   the PageRank algorithm utilizes the model of the random surfer.
   Under this model, a surfer performs an initial search and lands on a page from the corpus.
   From that point on, surfers randomly select one of the following two options:

       They can follow any outgoing link from the current page and navigate to a new page.
       Surfers choose this option with a predefined probability that we will be referring to with the term damping factor.

       Alternatively, they can decide to run a new search query.
       This decision has the effect of teleporting the surfer to a random page in the corpus.

   The PageRank algorithm works under the assumption that the preceding steps are repeated in perpetuity.
   As a result, the model is equivalent to performing a random walk of the page graph.
   PageRank score values reflect the probability that a surfer lands on a particular page.
   By this definition, we expect the following to occur
       Each PageRank score should be a value in the [0, 1] range
       The sum of all assigned PageRank scores should be exactly equal to 1

   The package provides two independent estimators over the same graph:
   Sampler approximates the scores by simulating the surfer for a fixed
   number of steps and counting visits, while Iterator solves the
   PageRank recurrence by power iteration until the scores stabilize.
*/

// sumTolerance bounds how far the values of a computed distribution may
// drift from a total of 1 before the distribution is rejected.
const sumTolerance = 1e-5

var (
	// ErrEmptyCorpus is returned when an estimation is attempted on a
	// graph with no pages.
	ErrEmptyCorpus = xerrors.New("corpus contains no pages")

	// ErrUnknownPage is returned when a page referenced by an operation
	// is not part of the corpus.
	ErrUnknownPage = xerrors.New("page is not part of the corpus")

	// ErrInvalidParameter is returned when an estimation parameter is
	// outside its legal range.
	ErrInvalidParameter = xerrors.New("invalid parameter")

	// ErrInvariantViolation is returned when a computed distribution
	// does not sum to 1 within tolerance. It always indicates a defect
	// in the computation rather than bad input.
	ErrInvariantViolation = xerrors.New("distribution values do not sum to 1")

	// ErrNotConverged is returned by the iterative estimator when the
	// scores still exceed the convergence threshold after the maximum
	// number of iterations.
	ErrNotConverged = xerrors.New("ranks did not converge within the iteration cap")
)

// Distribution maps each page of a corpus to a probability score. The
// values of a valid distribution are non-negative and sum to 1 within a
// small tolerance.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, v := range d {
		sum += v
	}
	return sum
}

// validate checks the sum-to-1 invariant of the distribution.
func (d Distribution) validate() error {
	if sum := d.Sum(); math.Abs(sum-1.0) > sumTolerance {
		return xerrors.Errorf("distribution sums to %v: %w", sum, ErrInvariantViolation)
	}
	return nil
}

// Source provides the randomness consumed by the sampling estimator.
// The math/rand *Rand type satisfies this interface. Implementations
// are not required to be safe for concurrent use; each estimation owns
// its own Source.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int

	// Float64 returns a uniformly distributed float64 in [0, 1).
	Float64() float64
}
