package quotes

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a feed numeric string to a float64, accepting
// either comma or dot as the decimal separator. The second return is false
// for empty strings, trailing garbage, and out-of-range values. This is the
// single gate deciding whether a quote field is usable.
func ParseDecimal(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
