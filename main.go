package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/Ahmed-Sermani/linkrank/corpus/loader"
	"github.com/Ahmed-Sermani/linkrank/ranker"
	"github.com/Ahmed-Sermani/linkrank/report"
	"github.com/Ahmed-Sermani/linkrank/service"
	rankersvc "github.com/Ahmed-Sermani/linkrank/service/ranker"
	"github.com/Ahmed-Sermani/linkrank/vis"
)

var appName = "linkrank"

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"host": host,
	})

	if err := run(logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

func run(logger *logrus.Entry) error {
	var (
		estCfg  ranker.Config
		svcCfg  rankersvc.Config
		visPath string
	)

	flag.Float64Var(&estCfg.DampingFactor, "damping-factor", ranker.DefaultDampingFactor, "The probability that the random surfer follows a link instead of teleporting")
	flag.IntVar(&estCfg.SampleCount, "samples", ranker.DefaultSampleCount, "The number of samples drawn by the sampling estimator")
	flag.Float64Var(&estCfg.MinDeltaForConvergence, "convergence-threshold", ranker.DefaultMinDeltaForConvergence, "The maximum per-page rank change below which the iterative estimator stops")
	flag.IntVar(&estCfg.MaxIterations, "max-iterations", ranker.DefaultMaxIterations, "The maximum number of iterations before the iterative estimator gives up")
	flag.DurationVar(&svcCfg.UpdateInterval, "update-interval", 0, "When set, keep re-estimating the corpus at this interval instead of exiting after one run")
	flag.StringVar(&visPath, "chart-out", "", "When set, write an HTML chart comparing both estimates to this path")
	flag.Parse()

	if flag.NArg() != 1 {
		return xerrors.Errorf("usage: %s [flags] CORPUS_DIR", appName)
	}
	corpusDir := flag.Arg(0)

	if svcCfg.UpdateInterval != 0 {
		svcCfg.CorpusDir = corpusDir
		svcCfg.Estimator = estCfg
		svcCfg.Logger = logger.WithField("service", "rank-estimator")
		return runServices(svcCfg)
	}

	return estimateOnce(logger, corpusDir, estCfg, visPath)
}

// estimateOnce loads the corpus, runs both estimators and writes the
// reports to stdout, mirroring the behavior of a single service pass.
func estimateOnce(logger *logrus.Entry, corpusDir string, estCfg ranker.Config, visPath string) error {
	start := time.Now()
	g, err := loader.Load(corpusDir)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"num_pages": g.Len(),
		"duration":  time.Since(start).String(),
	}).Info("corpus loaded")

	sampler, err := ranker.NewSampler(estCfg)
	if err != nil {
		return err
	}
	sampled, err := sampler.Estimate(g)
	if err != nil {
		return err
	}
	if err = report.Sampling(os.Stdout, sampled, sampler.SampleCount()); err != nil {
		return err
	}

	iterator, err := ranker.NewIterator(estCfg)
	if err != nil {
		return err
	}
	iterated, err := iterator.Estimate(g)
	if err != nil {
		return err
	}
	if err = report.Iteration(os.Stdout, iterated); err != nil {
		return err
	}

	if visPath == "" {
		return nil
	}
	f, err := os.Create(visPath)
	if err != nil {
		return xerrors.Errorf("creating chart output: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err = vis.Render(f, sampled, iterated); err != nil {
		return err
	}
	logger.WithField("path", visPath).Info("chart written")
	return nil
}

// runServices blocks running the periodic estimation service until a
// termination signal arrives.
func runServices(svcCfg rankersvc.Config) error {
	svc, err := rankersvc.NewService(svcCfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	return service.Group{svc}.Run(ctx)
}
