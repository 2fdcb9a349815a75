package corpus_test

import (
	"testing"

	gc "gopkg.in/check.v1"

	"github.com/Ahmed-Sermani/linkrank/corpus"
)

var _ = gc.Suite(new(GraphTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type GraphTestSuite struct{}

func (s *GraphTestSuite) TestSelfLinksAndUnknownTargetsAreDropped(c *gc.C) {
	g := corpus.New(map[string][]string{
		"a.html": {"a.html", "b.html", "https://example.com/outside.html"},
		"b.html": {"a.html", "a.html"},
	})

	c.Assert(g.Len(), gc.Equals, 2)

	out, ok := g.OutLinks("a.html")
	c.Assert(ok, gc.Equals, true)
	c.Assert(out, gc.DeepEquals, []string{"b.html"})

	out, ok = g.OutLinks("b.html")
	c.Assert(ok, gc.Equals, true)
	c.Assert(out, gc.DeepEquals, []string{"a.html"})
}

func (s *GraphTestSuite) TestPagesAreSorted(c *gc.C) {
	g := corpus.New(map[string][]string{
		"c.html": nil,
		"a.html": nil,
		"b.html": nil,
	})

	c.Assert(g.Pages(), gc.DeepEquals, []string{"a.html", "b.html", "c.html"})
}

func (s *GraphTestSuite) TestLookups(c *gc.C) {
	g := corpus.New(map[string][]string{
		"a.html": {"b.html", "c.html"},
		"b.html": nil,
		"c.html": nil,
	})

	c.Assert(g.Contains("a.html"), gc.Equals, true)
	c.Assert(g.Contains("missing.html"), gc.Equals, false)

	degree, ok := g.OutDegree("a.html")
	c.Assert(ok, gc.Equals, true)
	c.Assert(degree, gc.Equals, 2)

	degree, ok = g.OutDegree("b.html")
	c.Assert(ok, gc.Equals, true)
	c.Assert(degree, gc.Equals, 0)

	_, ok = g.OutDegree("missing.html")
	c.Assert(ok, gc.Equals, false)

	c.Assert(g.HasLink("a.html", "c.html"), gc.Equals, true)
	c.Assert(g.HasLink("c.html", "a.html"), gc.Equals, false)
}

func (s *GraphTestSuite) TestEmptyGraph(c *gc.C) {
	g := corpus.New(nil)
	c.Assert(g.Len(), gc.Equals, 0)
	c.Assert(g.Pages(), gc.HasLen, 0)

	_, ok := g.OutLinks("a.html")
	c.Assert(ok, gc.Equals, false)
}
