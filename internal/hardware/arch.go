package hardware

import (
	"strconv"
	"strings"
)

const archPrefix = "gfx"

// ParseArchCode normalizes a vendor architecture string such as "gfx90a" or
// "gfx1030:xnack-" into a comparable integer (0x90a, 0x1030). The result is
// a dispatch hint only, so every non-conforming input yields 0 rather than
// an error.
func ParseArchCode(arch string) uint64 {
	rest, ok := strings.CutPrefix(arch, archPrefix)
	if !ok {
		return 0
	}

	// Drop the feature suffix, e.g. ":xnack-".
	rest, _, _ = strings.Cut(rest, ":")

	code, err := strconv.ParseUint(rest, 16, 64)
	if err != nil {
		return 0
	}
	return code
}
