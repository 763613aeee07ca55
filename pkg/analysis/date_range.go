package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// WeeklyTargetHours is the contractual weekly target. It is the sole source of
// target-hours figures; the per-code hours in settings are display data.
const WeeklyTargetHours = 7.8

// yearlyWeeks is the fixed annual approximation used for year ranges, not derived
// from the actual year length.
const yearlyWeeks = 52.14

const invalidRangeLabel = "Bitte Zeitraum wählen"

type RangeMode string

const (
	ModeMonth  RangeMode = "month"
	ModeYear   RangeMode = "year"
	ModeCustom RangeMode = "custom"
)

// DateRange is the resolved reporting interval. Start and End are inclusive bounds
// (End sits at the last millisecond of its day). Invalid marks the fallback taken
// when custom bounds failed to parse; the interval is still usable.
type DateRange struct {
	Start       time.Time
	End         time.Time
	Label       string
	TargetHours float64
	Invalid     bool
}

// Contains reports whether t lies within the inclusive interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveRange computes the reporting interval for the given mode. It never fails:
// malformed custom bounds degrade to the month of the reference date with Invalid
// set, a zero target, and an explicit "choose a range" label.
func ResolveRange(mode RangeMode, reference time.Time, customStart, customEnd string) DateRange {
	switch mode {
	case ModeYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		end := endOfDay(time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, reference.Location()))
		return DateRange{
			Start:       start,
			End:         end,
			Label:       strconv.Itoa(reference.Year()),
			TargetHours: yearlyWeeks * WeeklyTargetHours,
		}
	case ModeCustom:
		start, startOk := ParseDate(customStart, reference.Location())
		endDay, endOk := ParseDate(customEnd, reference.Location())
		if !startOk || !endOk {
			fallback := monthRange(reference)
			fallback.Label = invalidRangeLabel
			fallback.TargetHours = 0
			fallback.Invalid = true
			return fallback
		}
		end := endOfDay(endDay)
		days := math.Ceil(end.Sub(start).Abs().Hours() / 24)
		return DateRange{
			Start:       start,
			End:         end,
			Label:       fmt.Sprintf("%s - %s", start.Format("02.01.06"), end.Format("02.01.06")),
			TargetHours: days / 7 * WeeklyTargetHours,
		}
	default:
		return monthRange(reference)
	}
}

func monthRange(reference time.Time) DateRange {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	lastDay := start.AddDate(0, 1, -1)
	end := endOfDay(lastDay)
	return DateRange{
		Start:       start,
		End:         end,
		Label:       fmt.Sprintf("%s %d", germanMonths[reference.Month()-1], reference.Year()),
		TargetHours: float64(lastDay.Day()) / 7 * WeeklyTargetHours,
	}
}

var germanMonths = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// ParseDate parses a "YYYY-MM-DD" string into midnight in the given location (nil
// means local time). Zero components are rejected, matching the lenient
// split-and-check parsing the journal data has always been stored against.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year == 0 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
