package plotcheck

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a fixture color token to a concrete color. It
// accepts SVG 1.1 color names, the matplotlib single-letter shorthands,
// and #rgb / #rrggbb hex forms. The empty string means "use the library
// default" and yields a nil color without error.
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return nil, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	switch s {
	case "b":
		return colornames.Blue, nil
	case "g":
		return colornames.Green, nil
	case "r":
		return colornames.Red, nil
	case "c":
		return colornames.Cyan, nil
	case "m":
		return colornames.Magenta, nil
	case "y":
		return colornames.Yellow, nil
	case "k":
		return colornames.Black, nil
	case "w":
		return colornames.White, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func parseHexColor(s string) (color.Color, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
