// Package loader builds a corpus link graph out of a directory of HTML
// documents. Each .html file becomes a page named after the file; the
// href targets of its anchor tags become the outgoing links.
package loader

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ahmed-Sermani/linkrank/corpus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/xerrors"
)

// Load parses every HTML document directly inside dir and returns the
// link graph of the corpus. Links pointing at the page itself or at
// documents outside the corpus are dropped.
func Load(dir string) (*corpus.Graph, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS behaves like Load but reads the documents from the provided
// filesystem, which makes the loader testable without touching disk.
func LoadFS(fsys fs.FS) (*corpus.Graph, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, xerrors.Errorf("reading corpus directory: %w", err)
	}

	links := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}

		f, err := fsys.Open(entry.Name())
		if err != nil {
			return nil, xerrors.Errorf("opening corpus document %q: %w", entry.Name(), err)
		}
		targets, err := extractLinks(f)
		_ = f.Close()
		if err != nil {
			return nil, xerrors.Errorf("extracting links from %q: %w", entry.Name(), err)
		}
		links[entry.Name()] = targets
	}

	return corpus.New(links), nil
}

// extractLinks collects the href targets of all anchor tags in the
// document. The tokenizer tolerates malformed markup, so any readable
// document yields a (possibly empty) link list.
func extractLinks(f fs.File) ([]string, error) {
	var (
		doc  = html.NewTokenizer(f)
		seen = make(map[string]struct{})
	)

	var targets []string
	for {
		tokenType := doc.Next()
		if tokenType == html.ErrorToken {
			if err := doc.Err(); err != nil && !xerrors.Is(err, io.EOF) {
				return nil, err
			}
			return targets, nil
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		token := doc.Token()
		if token.DataAtom != atom.A {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key != "href" {
				continue
			}
			href := strings.TrimSpace(attr.Val)
			if href == "" {
				continue
			}
			if _, dup := seen[href]; dup {
				continue
			}
			seen[href] = struct{}{}
			targets = append(targets, href)
		}
	}
}
