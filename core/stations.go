package core

import (
	"fmt"

	"github.com/jmgilman/pdsnd-github/schema"
)

// PopularStations computes the modal start station, the modal end station
// and the most frequent ordered station pair with its trip count. The start
// and end modes are independent; the pair need not combine them.
func PopularStations(table *schema.TripTable) (schema.PopularStationsResult, error) {
	if table.Len() == 0 {
		return schema.PopularStationsResult{}, schema.ErrEmptyDataset
	}
	for _, column := range []string{schema.ColStartStation, schema.ColEndStation} {
		if !table.HasColumn(column) {
			return schema.PopularStationsResult{}, fmt.Errorf("popular stations need the %q column: %w", column, schema.ErrMissingColumn)
		}
	}

	starts := make([]string, table.Len())
	ends := make([]string, table.Len())
	pairCounts := make(map[schema.StationPair]int, table.Len())
	pairFirst := make(map[schema.StationPair]int, table.Len())
	for i := range table.Len() {
		start, _ := table.Cell(i, schema.ColStartStation)
		end, _ := table.Cell(i, schema.ColEndStation)
		starts[i] = start
		ends[i] = end

		pair := schema.StationPair{Start: start, End: end}
		if _, ok := pairCounts[pair]; !ok {
			pairFirst[pair] = i
		}
		pairCounts[pair]++
	}

	// Pair ties break toward the pair seen first in row order.
	var bestPair schema.StationPair
	bestCount := 0
	for pair, n := range pairCounts {
		if n > bestCount || (n == bestCount && pairFirst[pair] < pairFirst[bestPair]) {
			bestPair = pair
			bestCount = n
		}
	}

	return schema.PopularStationsResult{
		StartStation: modeOf(starts),
		EndStation:   modeOf(ends),
		Trip:         bestPair,
		TripCount:    bestCount,
	}, nil
}
