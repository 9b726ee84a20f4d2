package visual

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/klust/dataset"
)

// ci95 is the normal-approximation z value for a 95% confidence interval.
const ci95 = 1.96

// clusterOffset spaces clusters around each column tick in the mean
// profile chart.
const clusterOffset = 0.12

// ScatterPlot renders a 2-column dataset as a scatter, one glyph color per
// cluster label, with a legend entry per cluster.
//
// Contracts:
//   - ds must pass dataset.Validate and have exactly 2 columns;
//   - len(labels) == ds.Rows(), every label ≥ 1.
//
// Errors: dataset validation errors, ErrPlotDimension, ErrLabelMismatch.
func ScatterPlot(ds *dataset.Dataset, labels []int, title string) (*plot.Plot, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if ds.Cols() != 2 {
		return nil, ErrPlotDimension
	}
	k, err := checkLabels(ds.Rows(), labels)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	cols := ds.Columns()
	p.X.Label.Text = cols[0]
	p.Y.Label.Text = cols[1]

	rows := ds.Raw()
	var c int
	for c = 1; c <= k; c++ {
		pts := make(plotter.XYs, 0)
		for i, l := range labels {
			if l != c {
				continue
			}
			pts = append(pts, plotter.XY{X: rows[i][0], Y: rows[i][1]})
		}
		if len(pts) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = clusterColor(c)
		s.GlyphStyle.Radius = vg.Points(2.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), s)
	}
	p.Legend.Top = true

	return p, nil
}

// meanPoints couples mean coordinates with their CI half-widths so a
// single value feeds both the scatter and the error bars.
type meanPoints struct {
	plotter.XYs
	plotter.YErrors
}

// MeanProfilePlot renders, per cluster and per column, the cluster's mean
// value with a 95% confidence interval (mean ± 1.96·sd/√n). Columns sit on
// a nominal X axis; clusters are offset around each column tick.
//
// This is the "what makes the clusters differ" chart: well-separated
// intervals on a column mean that column discriminates the clusters.
//
// Contracts: as ScatterPlot, but any column count ≥ 1 is accepted.
//
// Errors: dataset validation errors, ErrLabelMismatch.
func MeanProfilePlot(ds *dataset.Dataset, labels []int, title string) (*plot.Plot, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	k, err := checkLabels(ds.Rows(), labels)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "column mean (95% CI)"

	var (
		cols = ds.Columns()
		c    int
		j    int
	)
	for c = 1; c <= k; c++ {
		member := make([]float64, 0, ds.Rows())
		pts := meanPoints{}
		for j = 0; j < len(cols); j++ {
			member = member[:0]
			for i, l := range labels {
				if l != c {
					continue
				}
				member = append(member, ds.Raw()[i][j])
			}
			if len(member) == 0 {
				continue
			}

			mean, sd := stat.MeanStdDev(member, nil)
			ci := 0.0
			if len(member) > 1 {
				ci = ci95 * sd / math.Sqrt(float64(len(member)))
			}
			x := float64(j) + (float64(c-1)-float64(k-1)/2)*clusterOffset
			pts.XYs = append(pts.XYs, plotter.XY{X: x, Y: mean})
			pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{Low: ci, High: ci})
		}
		if len(pts.XYs) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts.XYs)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = clusterColor(c)
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}

		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Color = clusterColor(c)

		p.Add(s, bars)
		p.Legend.Add(fmt.Sprintf("cluster %d", c), s)
	}
	p.Legend.Top = true
	p.NominalX(cols...)

	return p, nil
}

// SavePNG writes the plot as a PNG with the given size in inches.
func SavePNG(p *plot.Plot, path string, widthIn, heightIn float64) error {
	return p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path)
}

// checkLabels validates labels against the row count and returns the
// highest label (the effective cluster count).
func checkLabels(rows int, labels []int) (int, error) {
	if len(labels) != rows {
		return 0, ErrLabelMismatch
	}
	k := 0
	for _, l := range labels {
		if l < 1 {
			return 0, ErrLabelMismatch
		}
		if l > k {
			k = l
		}
	}

	return k, nil
}
