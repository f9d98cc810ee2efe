package fixture

import (
	"errors"
	"fmt"

	"plotcheck"
)

// ErrUnimplemented reports a fixture row naming a chart type outside
// the supported set.
var ErrUnimplemented = errors.New("function not implemented")

// Dispatch runs one fixture input through the adapter for the named
// chart type. Unknown names fail that row; malformed inputs do not.
func Dispatch(fig *plotcheck.Figure, name, input string) error {
	spec, ok := Specs[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnimplemented)
	}
	return spec.Run(fig, input)
}
