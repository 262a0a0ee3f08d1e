package lfsr

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTaps reads a comma separated list of tap positions, like "0, 2".
// Whitespace around each entry is ignored, and an empty string yields no taps.
// Range checking happens in New, since it depends on the register length.
func ParseTaps(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	taps := make([]int, 0, len(fields))
	for _, field := range fields {
		tap, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid tap position '%s': %w", field, err)
		}
		taps = append(taps, tap)
	}
	return taps, nil
}

// FormatTaps is the inverse of ParseTaps.
func FormatTaps(taps []int) string {
	parts := make([]string, len(taps))
	for i, tap := range taps {
		parts[i] = strconv.Itoa(tap)
	}
	return strings.Join(parts, ",")
}
