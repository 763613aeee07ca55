package shift

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/database"
)

type Repo interface {
	Store(ctx context.Context, userId string, shift Shift) error
	GetAll(ctx context.Context, userId string) ([]Shift, error)
	Delete(ctx context.Context, userId string, shiftId string) (bool, error)
	CountByTypeId(ctx context.Context, userId string, typeId string) (int, error)
}

type RepoImpl struct {
	db *database.DB
}

func NewShiftRepo(db *database.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId string, shift Shift) error {
	query := r.db.Rebind(`INSERT INTO shift (
			id, profile_id, shift_date, start_time, end_time,
			type_id, code_id, station, vehicle, call_sign, partner, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		shift.ID,
		userId,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		nullable(shift.TypeID),
		nullable(shift.CodeID),
		shift.Station,
		shift.Vehicle,
		shift.CallSign,
		shift.Partner,
		shift.CreatedAt.UnixMilli(),
	)
	if err != nil {
		err := fmt.Errorf("could not store shift: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId string) ([]Shift, error) {
	query := r.db.Rebind(`SELECT id, shift_date, start_time, end_time,
			type_id, code_id, station, vehicle, call_sign, partner, created_at
		FROM shift WHERE profile_id = ?`)

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query shifts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var shifts []Shift
	for rows.Next() {
		var s Shift
		var typeId, codeId *string
		var createdAtMillis int64
		if err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&typeId,
			&codeId,
			&s.Station,
			&s.Vehicle,
			&s.CallSign,
			&s.Partner,
			&createdAtMillis,
		); err != nil {
			err := fmt.Errorf("could not scan shift: %w", err)
			log.Error(err)
			return nil, err
		}
		if typeId != nil {
			s.TypeID = *typeId
		}
		if codeId != nil {
			s.CodeID = *codeId
		}
		s.CreatedAt = time.UnixMilli(createdAtMillis)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return shifts, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId string, shiftId string) (bool, error) {
	query := r.db.Rebind("DELETE FROM shift WHERE id = ? AND profile_id = ?")
	result, err := r.db.ExecContext(ctx, query, shiftId, userId)
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

func (r *RepoImpl) CountByTypeId(ctx context.Context, userId string, typeId string) (int, error) {
	query := r.db.Rebind("SELECT COUNT(*) FROM shift WHERE profile_id = ? AND type_id = ?")
	var count int
	if err := r.db.QueryRowContext(ctx, query, userId, typeId).Scan(&count); err != nil {
		err := fmt.Errorf("could not count shifts by type: %w", err)
		log.Error(err)
		return 0, err
	}
	return count, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
