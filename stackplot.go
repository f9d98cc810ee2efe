package plotcheck

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// StackPlot draws stacked filled bands over a shared x series: each row
// of ys is one layer, accumulated bottom to top. It returns one polygon
// per layer and the cumulative band tops, so callers can check the
// stacking arithmetic. Rows shorter than x are extended by repeating
// their last element; longer rows are truncated.
func (f *Figure) StackPlot(x []float64, ys [][]float64) ([]*plotter.Polygon, [][]float64, error) {
	if len(x) == 0 {
		return nil, nil, errors.New("stackplot: empty x")
	}
	if len(ys) == 0 {
		return nil, nil, errors.New("stackplot: no layers")
	}

	width := len(x)
	cum := make([]float64, width)
	polys := make([]*plotter.Polygon, 0, len(ys))
	tops := make([][]float64, 0, len(ys))
	for li, row := range ys {
		layer := fitRow(row, width)
		next := make([]float64, width)
		copy(next, cum)
		floats.Add(next, layer)

		poly, err := plotter.NewPolygon(fillRing(x, cum, next))
		if err != nil {
			return nil, nil, err
		}
		poly.Color = plotutil.Color(li)
		f.P.Add(poly)

		polys = append(polys, poly)
		tops = append(tops, next)
		cum = next
	}
	return polys, tops, nil
}

// fitRow fits a layer row to the given width, repeating the last element
// (0 when empty) or truncating.
func fitRow(row []float64, width int) []float64 {
	out := make([]float64, width)
	last := 0.0
	for i := range width {
		if i < len(row) {
			last = row[i]
		}
		out[i] = last
	}
	return out
}
