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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// Grid exposes a dense matrix as a plotter.GridXYZ with unit-spaced
// axes. Row 0 is the bottom row of the plot.
type Grid struct {
	m *mat.Dense
}

var _ plotter.GridXYZ = Grid{}

// NewGrid copies row-major data into a Grid. Ragged rows are extended by
// repeating their last element (an empty row contributes zeros).
func NewGrid(rows [][]float64) Grid {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	if width == 0 {
		width = 1
	}
	data := make([]float64, 0, len(rows)*width)
	for _, r := range rows {
		last := 0.0
		for c := range width {
			if c < len(r) {
				last = r[c]
			}
			data = append(data, last)
		}
	}
	return Grid{m: mat.NewDense(len(rows), width, data)}
}

// Dims implements plotter.GridXYZ.
func (g Grid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

// Z implements plotter.GridXYZ.
func (g Grid) Z(c, r int) float64 { return g.m.At(r, c) }

// X implements plotter.GridXYZ.
func (g Grid) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (g Grid) Y(r int) float64 { return float64(r) }

// HeatMap adds a heat map of the matrix.
func (f *Figure) HeatMap(rows [][]float64) (*plotter.HeatMap, error) {
	if len(rows) == 0 {
		return nil, errors.New("heatmap: empty grid")
	}
	h := plotter.NewHeatMap(NewGrid(rows), palette.Heat(12, 1))
	f.P.Add(h)
	return h, nil
}

// Contour adds contour lines of the matrix at the given levels; nil
// levels selects them automatically.
func (f *Figure) Contour(rows [][]float64, levels []float64) (*plotter.Contour, error) {
	if len(rows) == 0 {
		return nil, errors.New("contour: empty grid")
	}
	c := plotter.NewContour(NewGrid(rows), levels, palette.Heat(12, 1))
	f.P.Add(c)
	return c, nil
}
