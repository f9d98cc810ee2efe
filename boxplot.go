package plotcheck

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxPlot adds one box per group, located at consecutive integer x
// positions. Groups must be non-empty.
func (f *Figure) BoxPlot(groups [][]float64) ([]*plotter.BoxPlot, error) {
	boxes := make([]*plotter.BoxPlot, 0, len(groups))
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(15), float64(i), plotter.Values(g))
		if err != nil {
			return nil, err
		}
		f.P.Add(b)
		boxes = append(boxes, b)
	}
	return boxes, nil
}
