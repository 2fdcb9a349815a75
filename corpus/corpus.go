/*
   Package corpus models the link structure of a set of pages as an
   immutable directed graph. Each node is a page and its edge set is the
   collection of outgoing links, restricted to pages that are part of
   the corpus.
*/
package corpus

import "sort"

// Graph is an immutable snapshot of the link graph of a corpus. It is
// built once via New and never mutated afterwards, so it is safe to
// share between concurrent rank estimations.
type Graph struct {
	// pages holds the page names in lexicographic order.
	pages []string

	// outLinks holds the sorted outgoing link targets per page.
	outLinks map[string][]string

	// linkSet mirrors outLinks for O(1) membership checks.
	linkSet map[string]map[string]struct{}
}

// New creates a Graph snapshot from a mapping of page names to outgoing
// link targets. Self-links and links to pages that are not themselves
// keys of the mapping are silently dropped so that the returned graph
// always satisfies the corpus invariants regardless of how the input
// was produced.
func New(links map[string][]string) *Graph {
	g := &Graph{
		pages:    make([]string, 0, len(links)),
		outLinks: make(map[string][]string, len(links)),
		linkSet:  make(map[string]map[string]struct{}, len(links)),
	}

	for page := range links {
		g.pages = append(g.pages, page)
		g.linkSet[page] = make(map[string]struct{})
	}
	sort.Strings(g.pages)

	for page, targets := range links {
		for _, dst := range targets {
			if dst == page {
				continue // no self-links
			}
			if _, known := g.linkSet[dst]; !known {
				continue // target is not part of the corpus
			}
			if _, dup := g.linkSet[page][dst]; dup {
				continue
			}
			g.linkSet[page][dst] = struct{}{}
			g.outLinks[page] = append(g.outLinks[page], dst)
		}
		sort.Strings(g.outLinks[page])
	}

	return g
}

// Len returns the number of pages in the corpus.
func (g *Graph) Len() int { return len(g.pages) }

// Contains reports whether page is part of the corpus.
func (g *Graph) Contains(page string) bool {
	_, ok := g.linkSet[page]
	return ok
}

// Pages returns the page names in lexicographic order. The returned
// slice is shared with the graph and must not be modified.
func (g *Graph) Pages() []string { return g.pages }

// OutLinks returns the sorted outgoing link targets of page and whether
// the page is part of the corpus. A page with no outgoing links yields
// an empty slice. The returned slice is shared with the graph and must
// not be modified.
func (g *Graph) OutLinks(page string) ([]string, bool) {
	if !g.Contains(page) {
		return nil, false
	}
	return g.outLinks[page], true
}

// OutDegree returns the number of outgoing links of page and whether
// the page is part of the corpus.
func (g *Graph) OutDegree(page string) (int, bool) {
	if !g.Contains(page) {
		return 0, false
	}
	return len(g.outLinks[page]), true
}

// HasLink reports whether the corpus contains a link from src to dst.
func (g *Graph) HasLink(src, dst string) bool {
	_, ok := g.linkSet[src][dst]
	return ok
}
