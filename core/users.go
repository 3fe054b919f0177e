package core

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/jmgilman/pdsnd-github/schema"
)

// UserInfo counts rider types and, when the export carries them, gender
// counts and birth year stats. City exports differ: Washington has neither
// optional column, so those result fields stay nil there.
func UserInfo(table *schema.TripTable) (schema.UserInfoResult, error) {
	if table.Len() == 0 {
		return schema.UserInfoResult{}, schema.ErrEmptyDataset
	}
	if !table.HasColumn(schema.ColUserType) {
		return schema.UserInfoResult{}, fmt.Errorf("user info needs the %q column: %w", schema.ColUserType, schema.ErrMissingColumn)
	}

	result := schema.UserInfoResult{
		TypeCounts: countValues(columnValues(table, schema.ColUserType)),
	}
	if table.HasColumn(schema.ColGender) {
		result.GenderCounts = countValues(columnValues(table, schema.ColGender))
	}
	if table.HasColumn(schema.ColBirthYear) {
		years, err := birthYears(table)
		if err != nil {
			return schema.UserInfoResult{}, err
		}
		if len(years) > 0 {
			result.BirthYears = &schema.BirthYearStats{
				Earliest:   slices.Min(years),
				MostRecent: slices.Max(years),
				MostCommon: modeOf(years),
			}
		}
	}
	return result, nil
}

// birthYears parses the non-empty cells of the birth year column. Exports
// store years as floats ("1992.0"), so cells go through float parsing first.
func birthYears(table *schema.TripTable) ([]int, error) {
	years := make([]int, 0, table.Len())
	for i := range table.Len() {
		cell, _ := table.Cell(i, schema.ColBirthYear)
		if cell == "" {
			continue
		}
		year, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d holds %q: %w", i+1, cell, schema.ErrBadBirthYear)
		}
		years = append(years, int(year))
	}
	return years, nil
}
