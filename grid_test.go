package plotcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1.0, g.Z(0, 0))
	assert.Equal(t, 6.0, g.Z(2, 1))
	assert.Equal(t, 2.0, g.X(2))
	assert.Equal(t, 1.0, g.Y(1))
}

func TestNewGridRaggedRows(t *testing.T) {
	g := NewGrid([][]float64{
		{1, 2, 3},
		{7},
		{},
	})
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, r)

	// short rows repeat their last element, empty rows are zero
	assert.Equal(t, 7.0, g.Z(1, 1))
	assert.Equal(t, 7.0, g.Z(2, 1))
	assert.Equal(t, 0.0, g.Z(0, 2))
	assert.Equal(t, 0.0, g.Z(2, 2))
}

func TestHeatMap(t *testing.T) {
	fig := NewFigure()

	h, err := fig.HeatMap([][]float64{{0, 0.5}, {0.5, 1}})
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.NoError(t, fig.Close())
}

func TestHeatMapEmpty(t *testing.T) {
	fig := NewFigure()
	defer fig.Close()

	_, err := fig.HeatMap(nil)
	assert.Error(t, err)
}

func TestContour(t *testing.T) {
	fig := NewFigure()

	c, err := fig.Contour([][]float64{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}, nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.NoError(t, fig.Close())
}
