package core

import (
	"cmp"
	"sort"

	"github.com/jmgilman/pdsnd-github/schema"
)

// modeOf returns the most frequent value in a non-empty slice. Ties break
// toward the smallest value so repeated runs stay deterministic.
func modeOf[T cmp.Ordered](values []T) T {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best T
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best
}

// countValues tallies values and returns them sorted by descending count,
// breaking ties by first appearance so the listing matches row order.
func countValues(values []string) []schema.ValueCount {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	for i, v := range values {
		if _, ok := firstSeen[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	out := make([]schema.ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, schema.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Value] < firstSeen[out[j].Value]
	})
	return out
}

// columnValues copies the named column in row order, skipping empty cells.
// Empty cells are the CSV form of missing data and never count as a value.
func columnValues(table *schema.TripTable, column string) []string {
	values := make([]string, 0, table.Len())
	for i := range table.Len() {
		if v, ok := table.Cell(i, column); ok && v != "" {
			values = append(values, v)
		}
	}
	return values
}
