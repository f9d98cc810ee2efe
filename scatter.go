package plotcheck

import "gonum.org/v1/plot/plotter"

// Scatter adds a scatter plot. colorName may be empty for the default
// glyph color; an unresolvable name is an error.
func (f *Figure) Scatter(x, y []float64, colorName string) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(zipXY(x, y))
	if err != nil {
		return nil, err
	}
	c, err := ParseColor(colorName)
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.GlyphStyle.Color = c
	}
	f.P.Add(s)
	return s, nil
}
