package plotcheck

import (
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestSITicksRelabelsMajors(t *testing.T) {
	min, max := 0.0, 2e6
	got := SITicks{}.Ticks(min, max)
	require.NotEmpty(t, got)

	want := plot.DefaultTicks{}.Ticks(min, max)
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.Value, got[i].Value)
		if w.Label == "" {
			assert.Empty(t, got[i].Label, "minor tick %d must stay unlabelled", i)
			continue
		}
		assert.Equal(t, humanize.SI(w.Value, ""), got[i].Label)
	}
}

func TestSITicksDegenerateRange(t *testing.T) {
	assert.Nil(t, SITicks{}.Ticks(5, 5))
	assert.Nil(t, SITicks{}.Ticks(5, 1))
}
