package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	t.Run("sqlite queries pass through", func(t *testing.T) {
		db := Wrap(nil, DriverSQLite)

		query := db.Rebind("SELECT * FROM shift WHERE id = ? AND profile_id = ?")

		assert.Equal(t, "SELECT * FROM shift WHERE id = ? AND profile_id = ?", query)
	})

	t.Run("postgres placeholders are numbered", func(t *testing.T) {
		db := Wrap(nil, DriverPostgres)

		query := db.Rebind("INSERT INTO shift (id, profile_id, shift_date) VALUES (?, ?, ?)")

		assert.Equal(t, "INSERT INTO shift (id, profile_id, shift_date) VALUES ($1, $2, $3)", query)
	})

	t.Run("question marks inside literals are kept", func(t *testing.T) {
		db := Wrap(nil, DriverPostgres)

		query := db.Rebind("SELECT '?' FROM shift WHERE id = ?")

		assert.Equal(t, "SELECT '?' FROM shift WHERE id = $1", query)
	})

	t.Run("no placeholders", func(t *testing.T) {
		db := Wrap(nil, DriverPostgres)

		assert.Equal(t, "SELECT 1", db.Rebind("SELECT 1"))
	})
}
