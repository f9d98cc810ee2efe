package plotcheck

import (
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
)

// FillBetween shades the region between two curves sharing the x series.
// The region is a single closed ring: forward along y1, backward along
// y2.
func (f *Figure) FillBetween(x, y1, y2 []float64) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(fillRing(x, y1, y2))
	if err != nil {
		return nil, err
	}
	poly.Color = colornames.Lightskyblue
	f.P.Add(poly)
	return poly, nil
}

// fillRing builds the closed ring between the lower and upper curves,
// truncating all three series to the shortest.
func fillRing(x, lower, upper []float64) plotter.XYs {
	n := min(len(x), len(lower), len(upper))
	ring := make(plotter.XYs, 0, 2*n)
	for i := range n {
		ring = append(ring, plotter.XY{X: x[i], Y: lower[i]})
	}
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: x[i], Y: upper[i]})
	}
	return ring
}
