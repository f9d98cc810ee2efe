package fixture

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"plotcheck"
)

// Case is one row of the manual fixture table.
type Case struct {
	Function string
	Input    string
}

// LoadCases reads the Function and Input columns of a CSV fixture.
// Extra columns are ignored; the two named columns must exist.
func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("fixture %s: no header row", path)
	}

	funcCol, inputCol := -1, -1
	for i, name := range records[0] {
		switch name {
		case "Function":
			funcCol = i
		case "Input":
			inputCol = i
		}
	}
	if funcCol < 0 || inputCol < 0 {
		return nil, fmt.Errorf("fixture %s: missing Function/Input columns", path)
	}

	cases := make([]Case, 0, len(records)-1)
	for _, rec := range records[1:] {
		if funcCol >= len(rec) || inputCol >= len(rec) {
			continue
		}
		cases = append(cases, Case{Function: rec[funcCol], Input: rec[inputCol]})
	}
	return cases, nil
}

// Runner executes fixture cases, one fresh figure per case.
type Runner struct {
	Log *zap.Logger
}

// NewRunner returns a runner logging to log; nil means no logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Log: log}
}

// Run executes one case: open a figure, dispatch, close. The close runs
// regardless of the dispatch outcome, so no figure state leaks into the
// next case.
func (r *Runner) Run(c Case) (err error) {
	fig := plotcheck.NewFigure()
	defer func() {
		if cerr := fig.Close(); err == nil {
			err = cerr
		}
	}()

	spec, ok := Specs[c.Function]
	if !ok {
		return fmt.Errorf("%q: %w", c.Function, ErrUnimplemented)
	}
	args := spec.Build(c.Input)
	if len(args.Substituted) > 0 {
		r.Log.Debug("substituted defaults",
			zap.String("function", c.Function),
			zap.String("input", c.Input),
			zap.Strings("fields", args.Substituted))
	}
	return spec.Invoke(fig, args)
}

// Render executes one case and writes the resulting figure to path.
func (r *Runner) Render(c Case, w, h vg.Length, path string) error {
	fig := plotcheck.NewFigure()
	if err := Dispatch(fig, c.Function, c.Input); err != nil {
		return err
	}
	return fig.Save(w, h, path)
}
