package plotcheck

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// xyErr bundles points with their symmetric vertical errors.
type xyErr struct {
	plotter.XYs
	plotter.YErrors
}

// ErrorBar adds a line with vertical error bars. Error magnitudes are
// taken as absolute values.
func (f *Figure) ErrorBar(x, y, yerr []float64) (*plotter.YErrorBars, error) {
	n := min(len(x), len(y), len(yerr))
	d := xyErr{
		XYs:     zipXY(x[:n], y[:n]),
		YErrors: make(plotter.YErrors, n),
	}
	for i := range n {
		e := math.Abs(yerr[i])
		d.YErrors[i].Low = e
		d.YErrors[i].High = e
	}
	bars, err := plotter.NewYErrorBars(d)
	if err != nil {
		return nil, err
	}
	line, err := plotter.NewLine(d.XYs)
	if err != nil {
		return nil, err
	}
	f.P.Add(line, bars)
	return bars, nil
}
