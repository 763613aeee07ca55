package analysis

import (
	"strconv"
	"strings"
)

// CalculateDuration returns the elapsed hours between two "HH:MM" clock times. An end
// time before the start time means the shift crosses midnight, so a day is added
// before subtracting. Equal times yield 0, not 24: the wrap rule only triggers on
// strictly-less-than. Missing or unparseable input yields 0, since historical entries
// may be incomplete.
func CalculateDuration(startTime, endTime string) float64 {
	startMinutes, ok := parseClockTime(startTime)
	if !ok {
		return 0
	}
	endMinutes, ok := parseClockTime(endTime)
	if !ok {
		return 0
	}

	if endMinutes < startMinutes {
		endMinutes += 24 * 60
	}
	return float64(endMinutes-startMinutes) / 60
}

// parseClockTime converts "HH:MM" to minutes since midnight.
func parseClockTime(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 {
		return 0, false
	}
	return hours*60 + minutes, true
}
