package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/database"
)

type Repo interface {
	IsInitialized(ctx context.Context, userId string) (bool, error)
	Init(ctx context.Context, userId string, settings Settings) error
	Get(ctx context.Context, userId string) (Settings, error)
	AddShiftType(ctx context.Context, userId string, t ShiftType) error
	AddShiftCode(ctx context.Context, userId string, c ShiftCode) error
	AddListItem(ctx context.Context, userId string, category Category, value string) error
	RemoveShiftType(ctx context.Context, userId string, id string) (bool, error)
	RemoveShiftCode(ctx context.Context, userId string, id string) (bool, error)
	RemoveListItem(ctx context.Context, userId string, category Category, value string) (bool, error)
}

type RepoImpl struct {
	db *database.DB
}

func NewSettingsRepo(db *database.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) IsInitialized(ctx context.Context, userId string) (bool, error) {
	query := r.db.Rebind("SELECT initialized_at FROM settings_state WHERE profile_id = ?")
	var initializedAt int64
	err := r.db.QueryRowContext(ctx, query, userId).Scan(&initializedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		err := fmt.Errorf("could not query settings state: %w", err)
		log.Error(err)
		return false, err
	}
	return true, nil
}

// Init seeds the given settings for the profile in one transaction and marks the
// profile initialized.
func (r *RepoImpl) Init(ctx context.Context, userId string, settings Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	typeQuery := r.db.Rebind("INSERT INTO shift_type (id, profile_id, name) VALUES (?, ?, ?)")
	for _, t := range settings.ShiftTypes {
		if _, err := tx.ExecContext(ctx, typeQuery, t.ID, userId, t.Name); err != nil {
			return fmt.Errorf("could not seed shift type: %w", err)
		}
	}

	codeQuery := r.db.Rebind("INSERT INTO shift_code (id, profile_id, code, hours) VALUES (?, ?, ?, ?)")
	for _, c := range settings.ShiftCodes {
		if _, err := tx.ExecContext(ctx, codeQuery, c.ID, userId, c.Code, c.Hours); err != nil {
			return fmt.Errorf("could not seed shift code: %w", err)
		}
	}

	itemQuery := r.db.Rebind("INSERT INTO settings_item (profile_id, category, value) VALUES (?, ?, ?)")
	for category, values := range map[Category][]string{
		CategoryVehicles:  settings.Vehicles,
		CategoryCallSigns: settings.CallSigns,
		CategoryStations:  settings.Stations,
	} {
		for _, v := range values {
			if _, err := tx.ExecContext(ctx, itemQuery, userId, string(category), v); err != nil {
				return fmt.Errorf("could not seed %s item: %w", category, err)
			}
		}
	}

	stateQuery := r.db.Rebind("INSERT INTO settings_state (profile_id, initialized_at) VALUES (?, ?)")
	if _, err := tx.ExecContext(ctx, stateQuery, userId, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("could not mark settings initialized: %w", err)
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit settings init: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Get(ctx context.Context, userId string) (Settings, error) {
	var settings Settings

	typeQuery := r.db.Rebind("SELECT id, name FROM shift_type WHERE profile_id = ? ORDER BY name")
	rows, err := r.db.QueryContext(ctx, typeQuery, userId)
	if err != nil {
		err := fmt.Errorf("could not query shift types: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var t ShiftType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return Settings{}, fmt.Errorf("could not scan shift type: %w", err)
		}
		settings.ShiftTypes = append(settings.ShiftTypes, t)
	}
	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("error iterating over shift types: %w", err)
	}

	codeQuery := r.db.Rebind("SELECT id, code, hours FROM shift_code WHERE profile_id = ? ORDER BY code")
	codeRows, err := r.db.QueryContext(ctx, codeQuery, userId)
	if err != nil {
		err := fmt.Errorf("could not query shift codes: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	defer codeRows.Close()
	for codeRows.Next() {
		var c ShiftCode
		if err := codeRows.Scan(&c.ID, &c.Code, &c.Hours); err != nil {
			return Settings{}, fmt.Errorf("could not scan shift code: %w", err)
		}
		settings.ShiftCodes = append(settings.ShiftCodes, c)
	}
	if err := codeRows.Err(); err != nil {
		return Settings{}, fmt.Errorf("error iterating over shift codes: %w", err)
	}

	itemQuery := r.db.Rebind("SELECT category, value FROM settings_item WHERE profile_id = ? ORDER BY category, value")
	itemRows, err := r.db.QueryContext(ctx, itemQuery, userId)
	if err != nil {
		err := fmt.Errorf("could not query settings items: %w", err)
		log.Error(err)
		return Settings{}, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var category, value string
		if err := itemRows.Scan(&category, &value); err != nil {
			return Settings{}, fmt.Errorf("could not scan settings item: %w", err)
		}
		switch Category(category) {
		case CategoryVehicles:
			settings.Vehicles = append(settings.Vehicles, value)
		case CategoryCallSigns:
			settings.CallSigns = append(settings.CallSigns, value)
		case CategoryStations:
			settings.Stations = append(settings.Stations, value)
		default:
			log.Warnf("ignoring settings item with unknown category %q", category)
		}
	}
	if err := itemRows.Err(); err != nil {
		return Settings{}, fmt.Errorf("error iterating over settings items: %w", err)
	}

	return settings, nil
}

func (r *RepoImpl) AddShiftType(ctx context.Context, userId string, t ShiftType) error {
	query := r.db.Rebind("INSERT INTO shift_type (id, profile_id, name) VALUES (?, ?, ?)")
	if _, err := r.db.ExecContext(ctx, query, t.ID, userId, t.Name); err != nil {
		err := fmt.Errorf("could not store shift type: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) AddShiftCode(ctx context.Context, userId string, c ShiftCode) error {
	query := r.db.Rebind("INSERT INTO shift_code (id, profile_id, code, hours) VALUES (?, ?, ?, ?)")
	if _, err := r.db.ExecContext(ctx, query, c.ID, userId, c.Code, c.Hours); err != nil {
		err := fmt.Errorf("could not store shift code: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) AddListItem(ctx context.Context, userId string, category Category, value string) error {
	query := r.db.Rebind("INSERT INTO settings_item (profile_id, category, value) VALUES (?, ?, ?)")
	if _, err := r.db.ExecContext(ctx, query, userId, string(category), value); err != nil {
		err := fmt.Errorf("could not store %s item: %w", category, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) RemoveShiftType(ctx context.Context, userId string, id string) (bool, error) {
	query := r.db.Rebind("DELETE FROM shift_type WHERE id = ? AND profile_id = ?")
	return r.execDelete(ctx, query, id, userId)
}

func (r *RepoImpl) RemoveShiftCode(ctx context.Context, userId string, id string) (bool, error) {
	query := r.db.Rebind("DELETE FROM shift_code WHERE id = ? AND profile_id = ?")
	return r.execDelete(ctx, query, id, userId)
}

func (r *RepoImpl) RemoveListItem(ctx context.Context, userId string, category Category, value string) (bool, error) {
	query := r.db.Rebind("DELETE FROM settings_item WHERE profile_id = ? AND category = ? AND value = ?")
	return r.execDelete(ctx, query, userId, string(category), value)
}

func (r *RepoImpl) execDelete(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
