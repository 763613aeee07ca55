package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/pkg/user"
)

var ctx = user.WithUser(context.Background(), user.User{Id: "user-1", Username: "anna"})

var settingsRepoStub = NewStubSettingsRepo()

var service Service
var bus *event_bus.Bus

func setup(t *testing.T) func() {
	bus = event_bus.New()
	service = NewSettingsService(settingsRepoStub, bus)
	return func() {
		t.Log("Teardown after test")
		settingsRepoStub.Cleanup()
	}
}

func TestServiceImpl_Get(t *testing.T) {
	t.Run("should seed defaults with ids on first use", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		result, err := service.Get(ctx)

		// then
		assert.NoError(t, err)
		assert.Len(t, result.ShiftTypes, 3)
		assert.Len(t, result.ShiftCodes, 3)
		assert.NotEmpty(t, result.Vehicles)
		assert.NotEmpty(t, result.CallSigns)
		assert.NotEmpty(t, result.Stations)
		for _, shiftType := range result.ShiftTypes {
			assert.NotEmpty(t, shiftType.ID)
		}
		for _, code := range result.ShiftCodes {
			assert.NotEmpty(t, code.ID)
		}
	})

	t.Run("should seed only once", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Get(ctx)
		require.NoError(t, err)
		added, err := service.AddShiftType(ctx, "Springer")
		require.NoError(t, err)

		// when
		result, err := service.Get(ctx)

		// then
		assert.NoError(t, err)
		assert.Len(t, result.ShiftTypes, 4)
		assert.Contains(t, result.ShiftTypes, added)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Get(context.Background())

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_AddShiftType(t *testing.T) {
	t.Run("should assign an id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		added, err := service.AddShiftType(ctx, "Springer")

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.Equal(t, "Springer", added.Name)
	})
}

func TestServiceImpl_AddShiftCode(t *testing.T) {
	t.Run("should keep code and hours together", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		added, err := service.AddShiftCode(ctx, "S8", 8.5)

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.Equal(t, "S8", added.Code)
		assert.Equal(t, 8.5, added.Hours)
	})
}

func TestServiceImpl_AddListItem(t *testing.T) {
	t.Run("should reject object categories", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.AddListItem(ctx, CategoryShiftTypes, "Tagdienst")

		// then
		assert.Error(t, err)
	})

	t.Run("should store a plain value", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.AddListItem(ctx, CategoryStations, "Ostwache")

		// then
		assert.NoError(t, err)
		assert.Contains(t, settingsRepoStub.Stored["user-1"].Stations, "Ostwache")
	})
}

func TestServiceImpl_RemoveItem(t *testing.T) {
	t.Run("should remove a shift type and publish its name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		added, err := service.AddShiftType(ctx, "Springer")
		require.NoError(t, err)

		var published []event_bus.ShiftTypeRemoved
		bus.Subscribe(event_bus.TopicShiftTypeRemoved, func(e event_bus.Event) error {
			published = append(published, e.Data.(event_bus.ShiftTypeRemoved))
			return nil
		})

		// when
		removed, err := service.RemoveItem(ctx, CategoryShiftTypes, added.ID)

		// then
		assert.NoError(t, err)
		assert.True(t, removed)
		require.Len(t, published, 1)
		assert.Equal(t, added.ID, published[0].TypeID)
		assert.Equal(t, "Springer", published[0].Name)
	})

	t.Run("should not publish when the type does not exist", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		var published []event_bus.ShiftTypeRemoved
		bus.Subscribe(event_bus.TopicShiftTypeRemoved, func(e event_bus.Event) error {
			published = append(published, e.Data.(event_bus.ShiftTypeRemoved))
			return nil
		})

		// when
		removed, err := service.RemoveItem(ctx, CategoryShiftTypes, "missing")

		// then
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Empty(t, published)
	})

	t.Run("should remove list items by value", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		require.NoError(t, service.AddListItem(ctx, CategoryVehicles, "R-RTW-9"))

		// when
		removed, err := service.RemoveItem(ctx, CategoryVehicles, "R-RTW-9")

		// then
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.RemoveItem(ctx, Category("bogus"), "x")

		// then
		assert.Error(t, err)
	})
}
