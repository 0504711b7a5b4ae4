package mtl

import (
	"strconv"
	"strings"
)

// CastToBest converts a raw metadata token into its best-fitting type: int
// first, then float64, then string. String values lose exactly one layer of
// surrounding double quotes. The string fallback always succeeds.
func CastToBest(raw string) interface{} {
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}

	return raw
}
