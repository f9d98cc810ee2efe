package fixture

import (
	"fmt"
	"slices"

	"plotcheck"
)

// Field describes one argument a chart accepts.
type Field struct {
	Name    string
	Aliases []string

	// Default is substituted when the field is missing or cannot be
	// coerced. Must draw something valid on its own.
	Default []float64

	// Align marks fields whose series lengths must be reconciled with
	// each other before the drawing call.
	Align bool

	// Labels marks a field whose list-of-strings form is kept as
	// category labels instead of being coerced.
	Labels bool

	// Raw marks a field whose parsed value is consumed directly by the
	// chart's Finish hook; the generic coercion step skips it.
	Raw bool
}

// ChartSpec is the declarative descriptor driving the generic adapter
// pipeline for one chart type.
type ChartSpec struct {
	// Name is the fixture's function identifier, e.g. "pyplot.bar".
	Name string

	// Fields in positional order.
	Fields []Field

	// Extras lists recognized non-series keywords (color, bins, ...),
	// captured as raw text for the Finish hook.
	Extras []string

	// Finish runs after coercion and length reconciliation, applying
	// chart-specific repairs (positive pie slices, bin counts, nested
	// boxplot groups, synthesized image grids).
	Finish func(a *Args)

	// Invoke performs the drawing call.
	Invoke func(fig *plotcheck.Figure, a *Args) error
}

// Args is the reconciled argument bundle for one chart invocation.
type Args struct {
	spec *ChartSpec

	// Values holds the parsed literal for every field that appeared in
	// the input.
	Values map[string]Value

	// Series holds the coerced (and, for aligned fields, broadcast)
	// numeric series per field.
	Series map[string][]float64

	// Extra holds raw text for recognized non-series keywords.
	Extra map[string]string

	// Labels is set when a Labels field parsed as string categories.
	Labels []string

	// Fields filled by Finish hooks.
	Color  string
	Bins   int
	Groups [][]float64
	Matrix [][]float64

	// Substituted names the fields that fell back to their defaults.
	Substituted []string
}

// Build runs the front half of the pipeline: split, parse, coerce,
// reconcile, repair. It never fails; malformed input degrades to
// defaults.
func (s *ChartSpec) Build(input string) *Args {
	a := &Args{
		spec:   s,
		Values: make(map[string]Value),
		Series: make(map[string][]float64),
		Extra:  make(map[string]string),
	}

	// assign tokens to fields
	pos := 0
	for _, t := range Split(input) {
		if t.Key != "" {
			if f := s.field(t.Key); f != nil {
				a.Values[f.Name] = Parse(t.Raw)
			} else if slices.Contains(s.Extras, t.Key) {
				a.Extra[t.Key] = t.Raw
			}
			// unknown keywords are dropped, not errors
			continue
		}
		if pos < len(s.Fields) {
			a.Values[s.Fields[pos].Name] = Parse(t.Raw)
			pos++
		}
	}

	// coerce per field
	for _, f := range s.Fields {
		if f.Raw {
			continue
		}
		v, provided := a.Values[f.Name]
		if !provided {
			a.Series[f.Name] = slices.Clone(f.Default)
			a.substitute(f.Name)
			continue
		}
		if f.Labels {
			if ls, ok := stringList(v); ok {
				a.Labels = ls
				continue
			}
		}
		out, fromInput := NumbersOK(v, f.Default)
		if !fromInput {
			a.substitute(f.Name)
		}
		a.Series[f.Name] = slices.Clone(out)
	}

	a.reconcile()
	if s.Finish != nil {
		s.Finish(a)
	}
	return a
}

// Run builds the arguments and performs the drawing call on fig.
func (s *ChartSpec) Run(fig *plotcheck.Figure, input string) error {
	return s.Invoke(fig, s.Build(input))
}

func (s *ChartSpec) field(key string) *Field {
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == key || slices.Contains(f.Aliases, key) {
			return f
		}
	}
	return nil
}

func (a *Args) substitute(name string) {
	if !slices.Contains(a.Substituted, name) {
		a.Substituted = append(a.Substituted, name)
	}
}

// reconcile extends every aligned series to the longest one by
// repeating its own last element. Category labels take part using
// synthetic CatN names.
func (a *Args) reconcile() {
	maxLen := 0
	for _, f := range a.spec.Fields {
		if !f.Align {
			continue
		}
		n := len(a.Series[f.Name])
		if f.Labels && a.Labels != nil {
			n = len(a.Labels)
		}
		maxLen = max(maxLen, n)
	}
	for _, f := range a.spec.Fields {
		if !f.Align {
			continue
		}
		if f.Labels && a.Labels != nil {
			for i := len(a.Labels); i < maxLen; i++ {
				a.Labels = append(a.Labels, fmt.Sprintf("Cat%d", i))
			}
			continue
		}
		a.Series[f.Name] = extend(a.Series[f.Name], maxLen)
	}
}

// extend pads s to length n by repeating its last element (0 when s is
// empty).
func extend(s []float64, n int) []float64 {
	for len(s) < n {
		last := 0.0
		if len(s) > 0 {
			last = s[len(s)-1]
		}
		s = append(s, last)
	}
	return s
}

// stringList reports v as a list of category labels when every element
// is a string.
func stringList(v Value) ([]string, bool) {
	if v.Kind != List || len(v.List) == 0 {
		return nil, false
	}
	out := make([]string, len(v.List))
	for i, e := range v.List {
		if e.Kind != String {
			return nil, false
		}
		out[i] = e.Str
	}
	return out, true
}
