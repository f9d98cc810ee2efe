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
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie is a pie chart plotter. gonum/plot has no pie primitive, so the
// corpus carries its own: the unit disc is centered on the data origin
// and slices are drawn counterclockwise from StartAngle, one wedge per
// value. All values must be strictly positive and finite.
type Pie struct {
	Values plotter.Values

	// StartAngle is the angle of the first wedge's leading edge, in
	// radians from the positive x axis.
	StartAngle float64

	// Colors are cycled over the wedges. When nil, the plotutil
	// default palette is used.
	Colors []color.Color
}

var (
	_ plot.Plotter    = (*Pie)(nil)
	_ plot.DataRanger = (*Pie)(nil)
)

// NewPie returns a pie chart over the given slice sizes.
func NewPie(vs plotter.Values) (*Pie, error) {
	if len(vs) == 0 {
		return nil, errors.New("pie: no values")
	}
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, fmt.Errorf("pie: value %v is not strictly positive", v)
		}
	}
	cp := make(plotter.Values, len(vs))
	copy(cp, vs)
	return &Pie{Values: cp}, nil
}

// Fracs returns each slice's share of the whole, in order.
func (p *Pie) Fracs() []float64 {
	sum := 0.0
	for _, v := range p.Values {
		sum += v
	}
	fracs := make([]float64, len(p.Values))
	for i, v := range p.Values {
		fracs[i] = v / sum
	}
	return fracs
}

func (p *Pie) color(i int) color.Color {
	if len(p.Colors) > 0 {
		return p.Colors[i%len(p.Colors)]
	}
	return plotutil.Color(i)
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}
	radius := trX(1) - trX(0)

	angle := p.StartAngle
	for i, frac := range p.Fracs() {
		sweep := 2 * math.Pi * frac
		start := vg.Point{
			X: center.X + radius*vg.Length(math.Cos(angle)),
			Y: center.Y + radius*vg.Length(math.Sin(angle)),
		}
		var path vg.Path
		path.Move(center)
		path.Line(start)
		path.Arc(center, radius, angle, sweep)
		path.Close()
		c.SetColor(p.color(i))
		c.Fill(path)
		angle += sweep
	}
}

// DataRange implements plot.DataRanger, leaving a margin around the
// unit disc.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.25, 1.25, -1.25, 1.25
}

// Pie adds a pie chart over the given slice sizes.
func (f *Figure) Pie(sizes []float64) (*Pie, error) {
	p, err := NewPie(plotter.Values(sizes))
	if err != nil {
		return nil, err
	}
	f.P.HideAxes()
	f.P.Add(p)
	return p, nil
}
