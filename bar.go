package plotcheck

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var defaultBarWidth = vg.Points(20)

// Bar adds a bar chart with numeric x positions. gonum places bars at
// consecutive indices, so the x slice only anchors the axis origin.
func (f *Figure) Bar(x, heights []float64) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values(heights), defaultBarWidth)
	if err != nil {
		return nil, err
	}
	if len(x) > 0 {
		b.XMin = x[0]
	}
	f.P.Add(b)
	return b, nil
}

// BarLabels adds a bar chart with categorical x labels. The caller must
// supply one label per height.
func (f *Figure) BarLabels(labels []string, heights []float64) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values(heights), defaultBarWidth)
	if err != nil {
		return nil, err
	}
	f.P.Add(b)
	f.P.NominalX(labels...)
	return b, nil
}
