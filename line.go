package plotcheck

import "gonum.org/v1/plot/plotter"

// Line adds a line plot through the given points.
func (f *Figure) Line(x, y []float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(zipXY(x, y))
	if err != nil {
		return nil, err
	}
	f.P.Add(l)
	return l, nil
}
