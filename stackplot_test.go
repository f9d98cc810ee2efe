package plotcheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPlot(t *testing.T) {
	fig := NewFigure()

	polys, tops, err := fig.StackPlot(
		[]float64{0, 1, 2},
		[][]float64{
			{1, 1, 1},
			{2, 2},
		},
	)
	require.NoError(t, err)
	assert.Len(t, polys, 2)

	want := [][]float64{
		{1, 1, 1},
		{3, 3, 3}, // short second layer repeats its last element
	}
	if diff := cmp.Diff(want, tops); diff != "" {
		t.Errorf("band tops mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, fig.Close())
}

func TestStackPlotErrors(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	_, _, err := fig.StackPlot(nil, [][]float64{{1}})
	assert.Error(t, err)

	_, _, err = fig.StackPlot([]float64{0, 1}, nil)
	assert.Error(t, err)
}

func TestFitRow(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 2, 2}, fitRow([]float64{1, 2}, 4))
	assert.Equal(t, []float64{1, 2}, fitRow([]float64{1, 2, 3}, 2))
	assert.Equal(t, []float64{0, 0}, fitRow(nil, 2))
}
