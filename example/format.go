package example

import (
	"fmt"
	"sort"
	"strings"
)

// FormatTrace renders a per-level trace from the top level down, one level per line.
func FormatTrace(trace map[int][]int) string {
	levels := make([]int, 0, len(trace))
	for level := range trace {
		levels = append(levels, level)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	var b strings.Builder
	for _, level := range levels {
		ids := make([]string, len(trace[level]))
		for i, id := range trace[level] {
			ids[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(&b, "level %d: %s\n", level, strings.Join(ids, " -> "))
	}
	return b.String()
}

// FormatCoords renders a coordinate vector with three decimals.
func FormatCoords(coords []float64) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%.3f", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
