package vis_test

import (
	"bytes"
	"strings"
	"testing"

	gc "gopkg.in/check.v1"

	"github.com/Ahmed-Sermani/linkrank/ranker"
	"github.com/Ahmed-Sermani/linkrank/vis"
)

var _ = gc.Suite(new(VisTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type VisTestSuite struct{}

func (s *VisTestSuite) TestRenderEmitsChartPage(c *gc.C) {
	sampled := ranker.Distribution{"a.html": 0.48, "b.html": 0.52}
	iterated := ranker.Distribution{"a.html": 0.5, "b.html": 0.5}

	var buf bytes.Buffer
	c.Assert(vis.Render(&buf, sampled, iterated), gc.IsNil)

	out := buf.String()
	c.Assert(strings.Contains(out, "<html"), gc.Equals, true)
	c.Assert(strings.Contains(out, "a.html"), gc.Equals, true)
	c.Assert(strings.Contains(out, "iteration"), gc.Equals, true)
}
