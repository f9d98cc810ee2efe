package plotcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	b, err := fig.Bar([]float64{3, 4, 5}, []float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, 3.0, b.XMin)
	assert.Equal(t, defaultBarWidth, b.Width)
}

func TestBarEmptyX(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	b, err := fig.Bar(nil, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.XMin)
}

func TestBarLabels(t *testing.T) {
	fig := NewFigure()

	_, err := fig.BarLabels([]string{"A", "B", "C"}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.NoError(t, fig.Close())
}
