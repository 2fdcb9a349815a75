// Package vis renders rank distributions as an HTML bar chart so the
// two estimators can be compared page by page in a browser.
package vis

import (
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Ahmed-Sermani/linkrank/ranker"
	"golang.org/x/xerrors"
)

// Render writes an HTML page charting the sampled and iterated rank of
// every page side by side, in lexicographic page order.
func Render(w io.Writer, sampled, iterated ranker.Distribution) error {
	pages := make([]string, 0, len(iterated))
	for p := range iterated {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	sampledBars := make([]opts.BarData, len(pages))
	iteratedBars := make([]opts.BarData, len(pages))
	for i, p := range pages {
		sampledBars[i] = opts.BarData{Value: sampled[p]}
		iteratedBars[i] = opts.BarData{Value: iterated[p]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "PageRank estimates",
			Subtitle: "visit-frequency sampling vs fixed-point iteration",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	bar.SetXAxis(pages).
		AddSeries("sampling", sampledBars).
		AddSeries("iteration", iteratedBars)

	page := components.NewPage()
	page.AddCharts(bar)
	if err := page.Render(w); err != nil {
		return xerrors.Errorf("rendering rank chart: %w", err)
	}
	return nil
}
