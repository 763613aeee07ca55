package analysis

import (
	"github.com/schichtlog/schichtlog/pkg/shift"
)

// Filters are optional attribute criteria. An empty criterion matches every shift;
// a non-empty one matches shifts whose field is one of its values. Criteria combine
// with AND.
type Filters struct {
	TypeIDs  []string
	Stations []string
	Vehicles []string
}

// Filter returns the shifts whose date lies within the inclusive range and which
// match every attribute criterion. Shifts with unparseable dates are dropped
// silently. No output order is guaranteed.
func Filter(shifts []shift.Shift, rng DateRange, filters Filters) []shift.Shift {
	matched := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		date, ok := ParseDate(s.Date, rng.Start.Location())
		if !ok {
			continue
		}
		if !rng.Contains(date) {
			continue
		}
		if !matchesCriterion(filters.TypeIDs, s.TypeID) {
			continue
		}
		if !matchesCriterion(filters.Stations, s.Station) {
			continue
		}
		if !matchesCriterion(filters.Vehicles, s.Vehicle) {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}

func matchesCriterion(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range selected {
		if v == value {
			return true
		}
	}
	return false
}
