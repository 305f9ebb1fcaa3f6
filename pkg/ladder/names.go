package ladder

import (
	"fmt"
	"strings"
)

// NormalizeNames turns a raw comma-delimited string into exactly count
// display names. The first count trimmed, non-empty tokens are kept in
// order; if fewer remain, the list is padded with prefix followed by the
// 1-based position ("P3", "Prize 4"). Surplus tokens are dropped.
//
// Names need not be unique; positions, not names, identify endpoints.
func NormalizeNames(raw string, count int, prefix string) []string {
	names := make([]string, 0, count)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
		if len(names) == count {
			break
		}
	}
	for i := len(names); i < count; i++ {
		names = append(names, fmt.Sprintf("%s%d", prefix, i+1))
	}
	return names
}
