package plotcheck

import (
	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// SITicks places ticks like plot.DefaultTicks but relabels the major
// ones with SI suffixes, so axes over large ranges stay readable
// (1500000 becomes "1.5 M").
type SITicks struct{}

var _ plot.Ticker = SITicks{}

// Ticks implements plot.Ticker.
func (SITicks) Ticks(min, max float64) []plot.Tick {
	if !(max > min) {
		return nil
	}
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue // minor tick
		}
		ticks[i].Label = humanize.SI(t.Value, "")
	}
	return ticks
}
