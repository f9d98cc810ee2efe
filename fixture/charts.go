package fixture

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"plotcheck"
)

// defaultBoxGroup is substituted for empty or invalid boxplot groups.
var defaultBoxGroup = []float64{0, 5, 10}

// defaultMatrix is the fallback image for pyplot.imshow.
var defaultMatrix = [][]float64{{0, 0.5}, {0.5, 1}}

// Specs is the closed registry of dispatchable chart types, keyed by
// the function identifiers used in the fixture file.
var Specs = map[string]*ChartSpec{}

func register(s *ChartSpec) *ChartSpec {
	Specs[s.Name] = s
	return s
}

var barSpec = register(&ChartSpec{
	Name: "pyplot.bar",
	Fields: []Field{
		{Name: "x", Default: []float64{0, 1, 2, 3}, Align: true, Labels: true},
		{Name: "height", Default: []float64{5, 5, 5, 5}, Align: true},
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		if a.Labels != nil {
			_, err := fig.BarLabels(a.Labels, a.Series["height"])
			return err
		}
		_, err := fig.Bar(a.Series["x"], a.Series["height"])
		return err
	},
})

var scatterSpec = register(&ChartSpec{
	Name: "pyplot.scatter",
	Fields: []Field{
		{Name: "x", Default: []float64{0, 0}, Align: true},
		{Name: "y", Default: []float64{0, 0}, Align: true},
	},
	Extras: []string{"color", "c"},
	Finish: func(a *Args) {
		raw, ok := a.Extra["color"]
		if !ok {
			raw, ok = a.Extra["c"]
		}
		if ok {
			a.Color = unquote(raw)
		}
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.Scatter(a.Series["x"], a.Series["y"], a.Color)
		return err
	},
})

var plotSpec = register(&ChartSpec{
	Name: "pyplot.plot",
	Fields: []Field{
		{Name: "x", Default: []float64{0, 1}, Align: true},
		{Name: "y", Default: []float64{0, 1}, Align: true},
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.Line(a.Series["x"], a.Series["y"])
		return err
	},
})

var fillBetweenSpec = register(&ChartSpec{
	Name: "pyplot.fill_between",
	Fields: []Field{
		{Name: "x", Default: []float64{0, 1}, Align: true},
		{Name: "y1", Default: []float64{0, 0}, Align: true},
		{Name: "y2", Default: []float64{1, 1}, Align: true},
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.FillBetween(a.Series["x"], a.Series["y1"], a.Series["y2"])
		return err
	},
})

var boxplotSpec = register(&ChartSpec{
	Name: "pyplot.boxplot",
	Fields: []Field{
		{Name: "data", Raw: true},
	},
	Finish: func(a *Args) {
		v, provided := a.Values["data"]
		if !provided {
			a.Groups = [][]float64{slices.Clone(defaultBoxGroup)}
			a.substitute("data")
			return
		}
		a.Groups = boxGroups(a, v)
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.BoxPlot(a.Groups)
		return err
	},
})

var pieSpec = register(&ChartSpec{
	Name: "pyplot.pie",
	Fields: []Field{
		{Name: "sizes", Aliases: []string{"x"}, Default: []float64{1, 1}},
	},
	Finish: func(a *Args) {
		// slices must be strictly positive
		sizes := a.Series["sizes"]
		for i, v := range sizes {
			sizes[i] = math.Abs(v) + 0.1
		}
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.Pie(a.Series["sizes"])
		return err
	},
})

var errorbarSpec = register(&ChartSpec{
	Name: "pyplot.errorbar",
	Fields: []Field{
		{Name: "x", Default: []float64{0, 1, 2, 3}, Align: true},
		{Name: "y", Default: []float64{5, 5, 5, 5}, Align: true},
		{Name: "yerr", Default: []float64{0.5, 0.5, 0.5, 0.5}, Align: true},
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.ErrorBar(a.Series["x"], a.Series["y"], a.Series["yerr"])
		return err
	},
})

var histSpec = register(&ChartSpec{
	Name: "pyplot.hist",
	Fields: []Field{
		{Name: "data", Aliases: []string{"x"}, Default: []float64{1, 5, 10, 5, 1}},
	},
	Extras: []string{"bins"},
	Finish: func(a *Args) {
		a.Bins = 10
		raw, ok := a.Extra["bins"]
		if !ok {
			return
		}
		v := Parse(raw)
		if v.Kind == Number && v.Num == math.Trunc(v.Num) && v.Num > 0 {
			a.Bins = int(v.Num)
		}
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.Hist(a.Series["data"], a.Bins)
		return err
	},
})

var imshowSpec = register(&ChartSpec{
	Name: "pyplot.imshow",
	Fields: []Field{
		{Name: "array", Raw: true},
	},
	Finish: func(a *Args) {
		if v, provided := a.Values["array"]; provided {
			if v.Kind == String {
				if m, ok := dimsMatrix(v.Str); ok {
					a.Matrix = m
					return
				}
			}
			if m, ok := nestedMatrix(v); ok {
				a.Matrix = m
				return
			}
		}
		a.Matrix = defaultMatrix
		a.substitute("array")
	},
	Invoke: func(fig *plotcheck.Figure, a *Args) error {
		_, err := fig.HeatMap(a.Matrix)
		return err
	},
})

// boxGroups converts a parsed value into boxplot groups: a list of
// lists keeps its shape, anything else becomes a single group. Empty or
// invalid groups are replaced by the default group.
func boxGroups(a *Args, v Value) [][]float64 {
	if v.Kind == List && len(v.List) > 0 {
		nested := true
		for _, e := range v.List {
			if e.Kind != List {
				nested = false
				break
			}
		}
		if nested {
			groups := make([][]float64, 0, len(v.List))
			for _, e := range v.List {
				g, fromInput := NumbersOK(e, defaultBoxGroup)
				if !fromInput {
					a.substitute("data")
				}
				groups = append(groups, slices.Clone(g))
			}
			return groups
		}
	}
	g, fromInput := NumbersOK(v, defaultBoxGroup)
	if !fromInput {
		a.substitute("data")
	}
	return [][]float64{slices.Clone(g)}
}

// dimsMatrix recognizes an RxC dimension token and synthesizes a random
// matrix of that shape, seeded from the dimensions so a fixture row
// always produces the same grid.
func dimsMatrix(s string) ([][]float64, bool) {
	rows, cols, ok := parseDims(s)
	if !ok {
		return nil, false
	}
	rng := rand.New(rand.NewPCG(uint64(rows), uint64(cols)))
	m := make([][]float64, rows)
	for r := range m {
		row := make([]float64, cols)
		for c := range row {
			row[c] = rng.Float64()
		}
		m[r] = row
	}
	return m, true
}

func parseDims(s string) (rows, cols int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "x")
	if len(parts) != 2 {
		return 0, 0, false
	}
	dims := make([]int, 2)
	for i, p := range parts {
		f, err := parseFloat(p)
		if err != nil || f != math.Trunc(f) || f <= 0 {
			return 0, 0, false
		}
		dims[i] = int(f)
	}
	return dims[0], dims[1], true
}

// nestedMatrix converts a parsed list into image rows: a list of lists
// maps row by row, a flat numeric list becomes a single row.
func nestedMatrix(v Value) ([][]float64, bool) {
	if v.Kind != List || len(v.List) == 0 {
		return nil, false
	}
	nested := true
	for _, e := range v.List {
		if e.Kind != List {
			nested = false
			break
		}
	}
	if !nested {
		row, fromInput := NumbersOK(v, nil)
		if !fromInput {
			return nil, false
		}
		return [][]float64{row}, true
	}
	m := make([][]float64, 0, len(v.List))
	for _, e := range v.List {
		row, fromInput := NumbersOK(e, nil)
		if !fromInput {
			return nil, false
		}
		m = append(m, row)
	}
	return m, true
}

// unquote strips one level of quoting from a raw keyword value.
func unquote(raw string) string {
	v := Parse(raw)
	if v.Kind == String {
		return v.Str
	}
	return strings.TrimSpace(raw)
}
