package plotcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBar(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	bars, err := fig.ErrorBar(
		[]float64{0, 1, 2},
		[]float64{5, 6, 7},
		[]float64{0.5, -1, 2},
	)
	require.NoError(t, err)
	require.Len(t, bars.XYs, 3)

	// error magnitudes are absolute and symmetric
	assert.Equal(t, 1.0, bars.YErrors[1].Low)
	assert.Equal(t, 1.0, bars.YErrors[1].High)
}

func TestErrorBarTruncatesToShortest(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	bars, err := fig.ErrorBar(
		[]float64{0, 1, 2, 3},
		[]float64{5, 6},
		[]float64{1, 1, 1},
	)
	require.NoError(t, err)
	assert.Len(t, bars.XYs, 2)
	assert.Len(t, bars.YErrors, 2)
}
