package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schichtlog/schichtlog/pkg/shift"
)

func marchRange() DateRange {
	return ResolveRange(ModeMonth, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "", "")
}

func TestFilter_DateRange(t *testing.T) {
	// given
	shifts := []shift.Shift{
		{ID: "a", Date: "2024-02-29"},
		{ID: "b", Date: "2024-03-01"},
		{ID: "c", Date: "2024-03-31"},
		{ID: "d", Date: "2024-04-01"},
		{ID: "e", Date: "invalid"},
	}

	// when
	matched := Filter(shifts, marchRange(), Filters{})

	// then
	ids := make([]string, 0, len(matched))
	for _, s := range matched {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"b", "c"}, ids)
}

func TestFilter_Criteria(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "a", Date: "2024-03-01", TypeID: "t1", Station: "Hauptwache", Vehicle: "71/1"},
		{ID: "b", Date: "2024-03-02", TypeID: "t2", Station: "Hauptwache", Vehicle: "71/2"},
		{ID: "c", Date: "2024-03-03", TypeID: "t1", Station: "Nordwache", Vehicle: "71/1"},
	}

	t.Run("values within one criterion combine with OR", func(t *testing.T) {
		matched := Filter(shifts, marchRange(), Filters{TypeIDs: []string{"t1", "t2"}})
		assert.Len(t, matched, 3)
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		matched := Filter(shifts, marchRange(), Filters{
			TypeIDs:  []string{"t1"},
			Stations: []string{"Hauptwache"},
		})
		assert.Len(t, matched, 1)
		assert.Equal(t, "a", matched[0].ID)
	})

	t.Run("empty criterion matches everything", func(t *testing.T) {
		matched := Filter(shifts, marchRange(), Filters{Vehicles: []string{}})
		assert.Len(t, matched, 3)
	})

	t.Run("unmatched value yields empty, not nil panic", func(t *testing.T) {
		matched := Filter(shifts, marchRange(), Filters{Stations: []string{"Südwache"}})
		assert.Empty(t, matched)
	})
}

func TestFilter_Idempotent(t *testing.T) {
	// given
	shifts := []shift.Shift{
		{ID: "a", Date: "2024-03-01", TypeID: "t1"},
		{ID: "b", Date: "2024-03-02", TypeID: "t2"},
	}
	filters := Filters{TypeIDs: []string{"t1"}}

	// when
	once := Filter(shifts, marchRange(), filters)
	twice := Filter(once, marchRange(), filters)

	// then
	assert.Equal(t, once, twice)
}
