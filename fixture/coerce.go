package fixture

import (
	"strconv"
	"strings"
)

// Numbers forces v into a non-empty float series, falling back to def
// whenever no step can produce at least one number. def must itself be
// non-empty; it is returned as-is, so callers should not mutate the
// result when it aliases a shared default.
func Numbers(v Value, def []float64) []float64 {
	out, _ := NumbersOK(v, def)
	return out
}

// NumbersOK is Numbers plus a flag reporting whether the input itself
// produced the series (false means def was substituted).
//
// The fallback ladder mirrors the mixed content of the fixture table:
// genuine literals, stringified literals, and malformed text must all
// end in a valid numeric series.
func NumbersOK(v Value, def []float64) ([]float64, bool) {
	switch v.Kind {
	case None:
		return def, false
	case List:
		out := make([]float64, 0, len(v.List))
		ok := true
		for _, e := range v.List {
			f, good := asFloat(e)
			if !good {
				ok = false
				break
			}
			out = append(out, f)
		}
		if ok {
			if len(out) == 0 {
				return def, false
			}
			return out, true
		}
	case String:
		if out, ok := bracketFloats(v.Str); ok {
			if len(out) == 0 {
				return def, false
			}
			return out, true
		}
		if f, err := parseFloat(v.Str); err == nil {
			return []float64{f}, true
		}
	case Number:
		return []float64{v.Num}, true
	}
	return def, false
}

// asFloat converts a scalar element to a float. Numeric-looking strings
// count.
func asFloat(v Value) (float64, bool) {
	switch v.Kind {
	case Number:
		return v.Num, true
	case String:
		f, err := parseFloat(v.Str)
		return f, err == nil
	}
	return 0, false
}

// bracketFloats parses a string shaped like a bracketed list: strip the
// brackets, split on commas, parse each non-empty piece. Any non-empty
// piece that is not a number fails the whole string.
func bracketFloats(s string) ([]float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	out := []float64{}
	for _, piece := range strings.Split(s[1:len(s)-1], ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		f, err := parseFloat(piece)
		if err != nil {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
