// Package ranker provides a service that periodically reloads a corpus
// directory and recomputes the PageRank estimates for it. Every pass
// rebuilds the link graph from scratch; nothing is carried over
// between passes.
package ranker

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/Ahmed-Sermani/linkrank/corpus/loader"
	"github.com/Ahmed-Sermani/linkrank/ranker"
	"github.com/Ahmed-Sermani/linkrank/report"
)

// Config encapsulates the settings for the rank estimation service.
type Config struct {
	// CorpusDir is the directory of HTML documents to rank.
	CorpusDir string

	// UpdateInterval is the time between subsequent estimation passes.
	UpdateInterval time.Duration

	// Estimator holds the parameters shared by both estimators.
	Estimator ranker.Config

	// Out receives the textual rank reports of each pass. If not
	// specified, os.Stdout is used instead.
	Out io.Writer

	// Clock is used for scheduling the passes. If not specified, the
	// wall clock is used instead.
	Clock clock.Clock

	// Logger is the logger for the service. If not specified, a
	// no-op logger is used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.CorpusDir == "" {
		err = multierror.Append(err, xerrors.Errorf("corpus directory has not been provided"))
	}
	if cfg.UpdateInterval == 0 {
		err = multierror.Append(err, xerrors.Errorf("update interval has not been provided"))
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.Logger = logrus.NewEntry(discard)
	}
	return err
}

// Service periodically estimates the PageRank scores of a corpus.
type Service struct {
	cfg Config
}

// NewService creates a new rank estimation service with the provided config.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("rank service: config validation failed: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Name implements service.Service.
func (svc *Service) Name() string { return "rank-estimator" }

// Run implements service.Service. It performs an estimation pass
// immediately and then once per UpdateInterval until the context gets
// cancelled.
func (svc *Service) Run(ctx context.Context) error {
	svc.cfg.Logger.WithField("update_interval", svc.cfg.UpdateInterval.String()).Info("starting service")
	for {
		if err := svc.estimatePass(); err != nil {
			return err
		}
		select {
		case <-svc.cfg.Clock.After(svc.cfg.UpdateInterval):
		case <-ctx.Done():
			return nil
		}
	}
}

// estimatePass reloads the corpus, runs both estimators and writes
// their reports.
func (svc *Service) estimatePass() error {
	var (
		runID  = uuid.New()
		logger = svc.cfg.Logger.WithField("run_id", runID.String())
		start  = time.Now()
	)

	g, err := loader.Load(svc.cfg.CorpusDir)
	if err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}
	logger.WithField("num_pages", g.Len()).Info("corpus loaded")

	sampler, err := ranker.NewSampler(svc.cfg.Estimator)
	if err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}
	sampled, err := sampler.Estimate(g)
	if err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}

	iterator, err := ranker.NewIterator(svc.cfg.Estimator)
	if err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}
	iterated, err := iterator.Estimate(g)
	if err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}

	if err := report.Sampling(svc.cfg.Out, sampled, sampler.SampleCount()); err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}
	if err := report.Iteration(svc.cfg.Out, iterated); err != nil {
		return xerrors.Errorf("rank service: %w", err)
	}

	logger.WithField("duration", time.Since(start).String()).Info("estimation pass complete")
	return nil
}
