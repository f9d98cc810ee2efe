package plotcheck

import "gonum.org/v1/plot/plotter"

// Hist adds a histogram of data with the given number of bins.
func (f *Figure) Hist(data []float64, bins int) (*plotter.Histogram, error) {
	h, err := plotter.NewHist(plotter.Values(data), bins)
	if err != nil {
		return nil, err
	}
	f.P.Add(h)
	return h, nil
}
