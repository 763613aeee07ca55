package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtlog/schichtlog/internal/test_utils"
)

func setupTestRepository(t *testing.T) (context.Context, *RepoImpl, string) {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	repo := NewSettingsRepo(db)
	userId := "profile-1"
	_, err := db.Exec("INSERT INTO profile (id, username) VALUES (?, ?)", userId, "anna")
	require.NoError(t, err)
	return context.Background(), repo, userId
}

func seededSettings() Settings {
	return Settings{
		ShiftTypes: []ShiftType{
			{ID: "t1", Name: "Tagdienst"},
			{ID: "t2", Name: "Nachtdienst"},
		},
		ShiftCodes: []ShiftCode{
			{ID: "c1", Code: "T", Hours: 12},
			{ID: "c2", Code: "N", Hours: 12},
		},
		Vehicles:  []string{"R-RTW-1"},
		CallSigns: []string{"Florian 1/83/1"},
		Stations:  []string{"Hauptwache", "Nordwache"},
	}
}

func TestRepoImpl_Init(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	initialized, err := repo.IsInitialized(ctx, userId)
	require.NoError(t, err)
	require.False(t, initialized)

	// when
	err = repo.Init(ctx, userId, seededSettings())

	// then
	assert.NoError(t, err)
	initialized, err = repo.IsInitialized(ctx, userId)
	assert.NoError(t, err)
	assert.True(t, initialized)

	stored, err := repo.Get(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, stored.ShiftTypes, 2)
	assert.Len(t, stored.ShiftCodes, 2)
	assert.Equal(t, []string{"R-RTW-1"}, stored.Vehicles)
	assert.Equal(t, []string{"Florian 1/83/1"}, stored.CallSigns)
	assert.Equal(t, []string{"Hauptwache", "Nordwache"}, stored.Stations)
}

func TestRepoImpl_Get_OrdersDeterministically(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	require.NoError(t, repo.AddShiftType(ctx, userId, ShiftType{ID: "t1", Name: "Zwischendienst"}))
	require.NoError(t, repo.AddShiftType(ctx, userId, ShiftType{ID: "t2", Name: "Nachtdienst"}))
	require.NoError(t, repo.AddShiftType(ctx, userId, ShiftType{ID: "t3", Name: "Tagdienst"}))

	// when
	stored, err := repo.Get(ctx, userId)

	// then
	assert.NoError(t, err)
	require.Len(t, stored.ShiftTypes, 3)
	assert.Equal(t, "Nachtdienst", stored.ShiftTypes[0].Name)
	assert.Equal(t, "Tagdienst", stored.ShiftTypes[1].Name)
	assert.Equal(t, "Zwischendienst", stored.ShiftTypes[2].Name)
}

func TestRepoImpl_RemoveShiftType(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	require.NoError(t, repo.AddShiftType(ctx, userId, ShiftType{ID: "t1", Name: "Tagdienst"}))

	// when
	removed, err := repo.RemoveShiftType(ctx, userId, "t1")

	// then
	assert.NoError(t, err)
	assert.True(t, removed)
	stored, err := repo.Get(ctx, userId)
	assert.NoError(t, err)
	assert.Empty(t, stored.ShiftTypes)
}

func TestRepoImpl_RemoveShiftType_Unknown(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	removed, err := repo.RemoveShiftType(ctx, userId, "missing")

	// then
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestRepoImpl_ListItems(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	require.NoError(t, repo.AddListItem(ctx, userId, CategoryStations, "Hauptwache"))
	require.NoError(t, repo.AddListItem(ctx, userId, CategoryVehicles, "R-RTW-1"))

	// when
	removed, err := repo.RemoveListItem(ctx, userId, CategoryStations, "Hauptwache")

	// then
	assert.NoError(t, err)
	assert.True(t, removed)
	stored, err := repo.Get(ctx, userId)
	assert.NoError(t, err)
	assert.Empty(t, stored.Stations)
	assert.Equal(t, []string{"R-RTW-1"}, stored.Vehicles)
}

func TestRepoImpl_RemoveListItem_WrongCategory(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	require.NoError(t, repo.AddListItem(ctx, userId, CategoryStations, "Hauptwache"))

	// when
	removed, err := repo.RemoveListItem(ctx, userId, CategoryVehicles, "Hauptwache")

	// then
	assert.NoError(t, err)
	assert.False(t, removed)
}
