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
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is an explicit drawing surface for one chart invocation.
// Each test case creates its own Figure, draws on it, and closes it;
// no state is shared between figures.
type Figure struct {
	P      *plot.Plot
	closed bool
}

// NewFigure returns an empty figure with SI-labelled axes.
func NewFigure() *Figure {
	p := plot.New()
	p.X.Tick.Marker = SITicks{}
	p.Y.Tick.Marker = SITicks{}
	return &Figure{P: p}
}

// Close renders the figure into a throwaway in-memory canvas, forcing
// every added plotter to execute its drawing path. A panic raised by the
// plotting library during the draw is returned as an error. Close is
// idempotent.
func (f *Figure) Close() (err error) {
	if f.closed {
		return nil
	}
	f.closed = true
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("drawing figure: %v", r)
		}
	}()
	f.fixRanges()
	c := vgimg.New(vg.Points(320), vg.Points(240))
	f.P.Draw(draw.New(c))
	return nil
}

// Save writes the figure as an image file; the format follows the file
// extension.
func (f *Figure) Save(w, h vg.Length, path string) error {
	f.fixRanges()
	return f.P.Save(w, h, path)
}

// fixRanges repairs degenerate axis ranges (empty figures, constant
// series) that would otherwise map data to NaN device coordinates.
func (f *Figure) fixRanges() {
	fixAxis(&f.P.X.Min, &f.P.X.Max)
	fixAxis(&f.P.Y.Min, &f.P.Y.Max)
}

func fixAxis(min, max *float64) {
	if math.IsInf(*min, 0) || math.IsInf(*max, 0) ||
		math.IsNaN(*min) || math.IsNaN(*max) {
		*min, *max = 0, 1
		return
	}
	if *max <= *min {
		*min -= 0.5
		*max += 0.5
	}
}

// zipXY pairs two series point-wise, truncating to the shorter one.
func zipXY(x, y []float64) plotter.XYs {
	n := min(len(x), len(y))
	xys := make(plotter.XYs, n)
	for i := range n {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}
