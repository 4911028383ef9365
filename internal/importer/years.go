package importer

import (
	"io"
	"slices"
)

const (
	minScenarioYear = 2020
	maxScenarioYear = 2100
)

var standardMilestones = []int{2025, 2030, 2040, 2050}

// AvailableYears lists the distinct years in [2020, 2100] found in the Year
// column of a CSV export, ascending. A file without a Year column yields none.
func AvailableYears(r io.Reader) ([]int, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	yearIdx := findColumn(rows[0], "year")
	if yearIdx < 0 {
		return nil, nil
	}
	return yearsIn(rows[1:], yearIdx), nil
}

func yearsIn(rows [][]string, yearIdx int) []int {
	seen := make(map[int]bool)
	var years []int
	for _, row := range rows {
		year, ok := parseYear(cell(row, yearIdx))
		if !ok || year < minScenarioYear || year > maxScenarioYear || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// SuggestMilestoneYears picks up to four milestone years from the available
// ones: the closest year to each of 2025, 2030, 2040 and 2050 inside the data
// range, padded with evenly spaced years when fewer than three match.
func SuggestMilestoneYears(available []int) []int {
	if len(available) == 0 {
		return slices.Clone(standardMilestones)
	}
	lo, hi := slices.Min(available), slices.Max(available)

	var suggested []int
	for _, target := range standardMilestones {
		if target < lo || target > hi {
			continue
		}
		closest := available[0]
		for _, y := range available[1:] {
			if abs(y-target) < abs(closest-target) {
				closest = y
			}
		}
		if !slices.Contains(suggested, closest) {
			suggested = append(suggested, closest)
		}
	}

	if len(suggested) < 3 {
		interval := (hi - lo) / 3
		suggested = append(suggested, lo, lo+interval, lo+2*interval, hi)
	}

	slices.Sort(suggested)
	suggested = slices.Compact(suggested)
	if len(suggested) > 4 {
		suggested = suggested[:4]
	}
	return suggested
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
