package shift

import "time"

// Shift is one worked duty period. Date is a local wall-clock date ("2006-01-02"),
// StartTime/EndTime are 24-hour clock times ("15:04") without a date component; an
// EndTime before StartTime means the shift runs past midnight.
type Shift struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	// TypeID and CodeID reference settings entries and may point at deleted ones;
	// consumers resolve gaps to an "Unbekannt" placeholder instead of failing.
	TypeID    string
	CodeID    string
	Station   string
	Vehicle   string
	CallSign  string
	Partner   string
	CreatedAt time.Time
}
