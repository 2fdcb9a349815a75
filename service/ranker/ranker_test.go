package ranker_test

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	gc "gopkg.in/check.v1"

	"github.com/Ahmed-Sermani/linkrank/ranker"
	rankersvc "github.com/Ahmed-Sermani/linkrank/service/ranker"
)

var _ = gc.Suite(new(ServiceTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type ServiceTestSuite struct{}

func (s *ServiceTestSuite) TestConfigValidation(c *gc.C) {
	_, err := rankersvc.NewService(rankersvc.Config{})
	c.Assert(err, gc.ErrorMatches, "(?s).*corpus directory has not been provided.*")

	_, err = rankersvc.NewService(rankersvc.Config{CorpusDir: c.MkDir()})
	c.Assert(err, gc.ErrorMatches, "(?s).*update interval has not been provided.*")
}

func (s *ServiceTestSuite) TestRunPerformsEstimationPass(c *gc.C) {
	corpusDir := c.MkDir()
	s.writePage(c, corpusDir, "1.html", `<a href="2.html">two</a>`)
	s.writePage(c, corpusDir, "2.html", `<a href="1.html">one</a>`)

	out := new(syncBuffer)
	svc, err := rankersvc.NewService(rankersvc.Config{
		CorpusDir:      corpusDir,
		UpdateInterval: time.Hour,
		Estimator: ranker.Config{
			SampleCount: 100,
			Rand:        rand.New(rand.NewSource(42)),
		},
		Out:   out,
		Clock: testclock.NewClock(time.Now()),
	})
	c.Assert(err, gc.IsNil)

	ctx, cancel := context.WithCancel(context.Background())
	doneCh := make(chan error, 1)
	go func() { doneCh <- svc.Run(ctx) }()

	// The first pass runs immediately; the next one is an hour away.
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "PageRank Results from Iteration") {
		if time.Now().After(deadline) {
			c.Fatalf("timed out waiting for the first estimation pass; output so far:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	c.Assert(<-doneCh, gc.IsNil)

	c.Assert(strings.Contains(out.String(), "PageRank Results from Sampling (n = 100)"), gc.Equals, true)
	c.Assert(strings.Contains(out.String(), "1.html: 0."), gc.Equals, true)
}

func (s *ServiceTestSuite) writePage(c *gc.C, dir, name, content string) {
	c.Assert(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644), gc.IsNil)
}

// syncBuffer is an io.Writer that tolerates the test goroutine reading
// while the service goroutine writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
