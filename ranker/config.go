package ranker

import (
	"math/rand"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Default values applied by Config.validate for unset parameters.
const (
	DefaultDampingFactor          = 0.85
	DefaultSampleCount            = 10000
	DefaultMinDeltaForConvergence = 0.001
	DefaultMaxIterations          = 1000
)

// Config encapsulates the parameters for the PageRank estimators.
type Config struct {
	// DampingFactor is the probability that a random surfer will click on
	// one of the outgoing links on the page they are currently visiting
	// instead of visiting (teleporting to) a random page in the corpus.
	//
	// If not specified, a default value of 0.85 will be used instead.
	DampingFactor float64

	// SampleCount is the number of surfer steps the sampling estimator
	// simulates. Higher values reduce the variance of the estimate but
	// do not change its expected value.
	//
	// If not specified, a default value of 10000 will be used instead.
	SampleCount int

	// MinDeltaForConvergence is the convergence threshold for the
	// iterative estimator. The estimator keeps iterating until the
	// largest per-page rank change between two consecutive iterations
	// becomes less than this value.
	//
	// If not specified, a default value of 0.001 will be used instead.
	MinDeltaForConvergence float64

	// MaxIterations caps the number of iterations the iterative
	// estimator attempts before reporting ErrNotConverged.
	//
	// If not specified, a default value of 1000 will be used instead.
	MaxIterations int

	// Rand is the source of randomness used by the sampling estimator.
	// Injecting a seeded source makes sample runs reproducible.
	//
	// If not specified, a time-seeded source will be used instead.
	Rand Source
}

// validate checks whether the estimator configuration is valid and sets
// the default values where required.
func (c *Config) validate() error {
	var err error
	if c.DampingFactor < 0 || c.DampingFactor >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("DampingFactor must be in the range (0, 1): %w", ErrInvalidParameter))
	} else if c.DampingFactor == 0 {
		c.DampingFactor = DefaultDampingFactor
	}

	if c.SampleCount < 0 {
		err = multierror.Append(err, xerrors.Errorf("SampleCount must be at least 1: %w", ErrInvalidParameter))
	} else if c.SampleCount == 0 {
		c.SampleCount = DefaultSampleCount
	}

	if c.MinDeltaForConvergence < 0 || c.MinDeltaForConvergence >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("MinDeltaForConvergence must be in the range (0, 1): %w", ErrInvalidParameter))
	} else if c.MinDeltaForConvergence == 0 {
		c.MinDeltaForConvergence = DefaultMinDeltaForConvergence
	}

	if c.MaxIterations < 0 {
		err = multierror.Append(err, xerrors.Errorf("MaxIterations must be at least 1: %w", ErrInvalidParameter))
	} else if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}

	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return err
}
