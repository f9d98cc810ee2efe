// Package plotcheck is a fixture-driven test corpus for the charting
// primitives of gonum.org/v1/plot.
//
// The root package is a thin construction layer over gonum/plot: one
// function per chart type, each returning the concrete plotter so tests
// can assert on its properties. Every call takes an explicit Figure
// handle; there is no process-global current figure. The fixture
// subpackage interprets loosely structured textual test cases and
// dispatches them through this layer.
package plotcheck

//go:generate go run ./cmd/plotcheck render --out testdata/rendered
