package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/schichtlog/schichtlog/pkg/settings"
	"github.com/schichtlog/schichtlog/pkg/shift"
)

// UnknownTypeName is the placeholder for shifts whose type was deleted or never set.
const UnknownTypeName = "Unbekannt"

// ChartPoint is one day's worked hours for the bar chart, labeled with the day of
// month ("07.").
type ChartPoint struct {
	Date  string
	Hours float64
	Label string
}

// DistributionEntry is the shift count for one resolved type name.
type DistributionEntry struct {
	Name  string
	Value int
}

type Stats struct {
	ActualHours  float64
	ShiftCount   int
	ChartSeries  []ChartPoint
	Distribution []DistributionEntry
}

// Aggregate folds a filtered shift list into summary statistics. Output is fully
// deterministic: the chart series is sorted ascending by date, the distribution
// descending by count with name as tie-break.
func Aggregate(shifts []shift.Shift, types []settings.ShiftType) Stats {
	nameByTypeId := make(map[string]string, len(types))
	for _, t := range types {
		nameByTypeId[t.ID] = t.Name
	}

	stats := Stats{ShiftCount: len(shifts)}
	hoursByDate := make(map[string]float64)
	countByName := make(map[string]int)

	for _, s := range shifts {
		duration := CalculateDuration(s.StartTime, s.EndTime)
		stats.ActualHours += duration
		hoursByDate[s.Date] += duration

		name := nameByTypeId[s.TypeID]
		if name == "" {
			name = UnknownTypeName
		}
		countByName[name]++
	}

	stats.ChartSeries = make([]ChartPoint, 0, len(hoursByDate))
	for date, hours := range hoursByDate {
		stats.ChartSeries = append(stats.ChartSeries, ChartPoint{
			Date:  date,
			Hours: hours,
			Label: dayLabel(date),
		})
	}
	sort.Slice(stats.ChartSeries, func(i, j int) bool {
		return stats.ChartSeries[i].Date < stats.ChartSeries[j].Date
	})

	stats.Distribution = make([]DistributionEntry, 0, len(countByName))
	for name, count := range countByName {
		stats.Distribution = append(stats.Distribution, DistributionEntry{Name: name, Value: count})
	}
	sort.Slice(stats.Distribution, func(i, j int) bool {
		a, b := stats.Distribution[i], stats.Distribution[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Name < b.Name
	})

	return stats
}

func dayLabel(date string) string {
	d, ok := ParseDate(date, time.UTC)
	if !ok {
		return "??"
	}
	return fmt.Sprintf("%02d.", d.Day())
}
