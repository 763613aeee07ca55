package settings

// Category names match the JSON field names used by the frontend.
type Category string

const (
	CategoryShiftTypes Category = "shiftTypes"
	CategoryShiftCodes Category = "shiftCodes"
	CategoryVehicles   Category = "vehicles"
	CategoryCallSigns  Category = "callSigns"
	CategoryStations   Category = "stations"
)

// IsListCategory reports whether the category holds plain strings, removed by value
// instead of by id.
func (c Category) IsListCategory() bool {
	return c == CategoryVehicles || c == CategoryCallSigns || c == CategoryStations
}

func (c Category) Valid() bool {
	switch c {
	case CategoryShiftTypes, CategoryShiftCodes, CategoryVehicles, CategoryCallSigns, CategoryStations:
		return true
	}
	return false
}

type ShiftType struct {
	ID   string
	Name string
}

// ShiftCode is a short duty code carrying the contractual hours for that code. The
// hours are display data; target-hours computation uses the weekly constant in
// pkg/analysis.
type ShiftCode struct {
	ID    string
	Code  string
	Hours float64
}

type Settings struct {
	ShiftTypes []ShiftType
	ShiftCodes []ShiftCode
	Vehicles   []string
	CallSigns  []string
	Stations   []string
}

// DefaultSettings returns the lists a fresh profile starts with.
func DefaultSettings() Settings {
	return Settings{
		ShiftTypes: []ShiftType{
			{Name: "Tagdienst"},
			{Name: "Nachtdienst"},
			{Name: "Zwischendienst"},
		},
		ShiftCodes: []ShiftCode{
			{Code: "T", Hours: 12},
			{Code: "N", Hours: 12},
			{Code: "K", Hours: 8},
		},
		Vehicles:  []string{"R-RTW-1", "R-NEF-1", "R-KdoW-1"},
		CallSigns: []string{"Florian 1/83/1", "Florian 1/76/1", "Florian 1/10/1"},
		Stations:  []string{"Hauptwache", "Nordwache", "Südwache"},
	}
}
