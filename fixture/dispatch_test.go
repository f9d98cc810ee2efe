package fixture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotcheck"
)

func TestDispatchKnownFunctions(t *testing.T) {
	want := []string{
		"pyplot.bar",
		"pyplot.scatter",
		"pyplot.plot",
		"pyplot.fill_between",
		"pyplot.boxplot",
		"pyplot.pie",
		"pyplot.errorbar",
		"pyplot.hist",
		"pyplot.imshow",
	}
	assert.Len(t, Specs, len(want))
	for _, name := range want {
		assert.Contains(t, Specs, name)
	}
}

func TestDispatchUnknownFunction(t *testing.T) {
	fig := plotcheck.NewFigure()
	defer fig.Close()

	err := Dispatch(fig, "pyplot.unknown_chart", "x=[1,2,3]")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))
	assert.Contains(t, err.Error(), "pyplot.unknown_chart")
}

func TestDispatchDrawsBar(t *testing.T) {
	fig := plotcheck.NewFigure()
	defer fig.Close()

	err := Dispatch(fig, "pyplot.bar", "x=[1,2,3], height=[10,20,30]")
	require.NoError(t, err)
}

// Malformed input never fails a known function; it degrades to defaults.
func TestDispatchNeverFailsOnMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"x=}{, y=((",
		"x=[], y=[]",
		"x=[1,2,3], y=['a','b']",
	}
	for name := range Specs {
		for _, in := range inputs {
			fig := plotcheck.NewFigure()
			err := Dispatch(fig, name, in)
			assert.NoError(t, err, "function %s input %q", name, in)
			assert.NoError(t, fig.Close())
		}
	}
}
