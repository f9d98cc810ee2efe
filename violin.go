// plotcheck - a fixture-driven test corpus for gonum/plot charting primitives
// Copyright (C) 2026  The plotcheck authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plotcheck

import (
	"errors"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// violinPoints is the number of evaluation points of the density curve.
const violinPoints = 64

// Violin is a violin plot of a single sample: a gaussian kernel density
// estimate mirrored around a vertical axis at Location. Quartiles come
// from gonum/stat on the sorted sample.
type Violin struct {
	Values plotter.Values

	Location float64

	// MaxWidth is the half-width, in x data units, of the widest point
	// of the body.
	MaxWidth float64

	// Density holds (sample value, density) pairs with the density
	// normalized so its maximum is 1.
	Density plotter.XYs

	Quartile1, Median, Quartile3 float64

	Color color.Color
}

var (
	_ plot.Plotter    = (*Violin)(nil)
	_ plot.DataRanger = (*Violin)(nil)
)

// NewViolin estimates the density of the sample with Silverman's rule of
// thumb for the bandwidth, evaluated over the sample range extended by
// three bandwidths on both sides.
func NewViolin(loc float64, sample plotter.Values) (*Violin, error) {
	if len(sample) == 0 {
		return nil, errors.New("violin: empty sample")
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	slices.Sort(sorted)
	for _, v := range sorted {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("violin: sample contains non-finite values")
		}
	}

	n := float64(len(sorted))
	h := 1.06 * stat.StdDev(sorted, nil) * math.Pow(n, -0.2)
	if !(h > 0) {
		h = 1 // constant or single-point sample
	}

	lo := sorted[0] - 3*h
	hi := sorted[len(sorted)-1] + 3*h
	density := make(plotter.XYs, violinPoints)
	peak := 0.0
	for i := range violinPoints {
		x := lo + (hi-lo)*float64(i)/float64(violinPoints-1)
		d := 0.0
		for _, s := range sorted {
			z := (x - s) / h
			d += math.Exp(-0.5 * z * z)
		}
		d /= n * h * math.Sqrt(2*math.Pi)
		density[i] = plotter.XY{X: x, Y: d}
		peak = math.Max(peak, d)
	}
	for i := range density {
		density[i].Y /= peak
	}

	v := &Violin{
		Values:    plotter.Values(sorted),
		Location:  loc,
		MaxWidth:  0.4,
		Density:   density,
		Quartile1: stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Quartile3: stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Color:     colornames.Steelblue,
	}
	return v, nil
}

// Plot implements plot.Plotter.
func (v *Violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	var path vg.Path
	for i, d := range v.Density {
		pt := vg.Point{X: trX(v.Location + d.Y*v.MaxWidth), Y: trY(d.X)}
		if i == 0 {
			path.Move(pt)
		} else {
			path.Line(pt)
		}
	}
	for i := len(v.Density) - 1; i >= 0; i-- {
		d := v.Density[i]
		path.Line(vg.Point{X: trX(v.Location - d.Y*v.MaxWidth), Y: trY(d.X)})
	}
	path.Close()
	c.SetColor(v.Color)
	c.Fill(path)
}

// DataRange implements plot.DataRanger.
func (v *Violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = v.Location - v.MaxWidth
	xmax = v.Location + v.MaxWidth
	ymin = v.Density[0].X
	ymax = v.Density[len(v.Density)-1].X
	return xmin, xmax, ymin, ymax
}

// Violin adds a violin plot of the sample at the given x location.
func (f *Figure) Violin(loc float64, sample []float64) (*Violin, error) {
	v, err := NewViolin(loc, plotter.Values(sample))
	if err != nil {
		return nil, err
	}
	f.P.Add(v)
	return v, nil
}
