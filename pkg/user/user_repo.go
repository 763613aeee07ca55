package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/database"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type RepoImpl struct {
	db *database.DB
}

func NewUserRepo(db *database.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) error {
	query := r.db.Rebind("INSERT INTO profile (id, username, display_name) VALUES (?, ?, ?)")
	_, err := r.db.ExecContext(ctx, query, user.Id, user.Username, user.DisplayName)
	if err != nil {
		err := fmt.Errorf("could not store user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id string) (User, error) {
	query := r.db.Rebind("SELECT id, username, display_name FROM profile WHERE id = ?")
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *RepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	query := r.db.Rebind("SELECT id, username, display_name FROM profile WHERE username = ?")
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *RepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	if err := row.Scan(&user.Id, &user.Username, &user.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}

func (r *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := "SELECT id, username, display_name FROM profile ORDER BY username"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Id, &user.Username, &user.DisplayName); err != nil {
			err := fmt.Errorf("could not scan user: %w", err)
			log.Error(err)
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return users, nil
}

func (r *RepoImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	query := r.db.Rebind("DELETE FROM profile WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, id)
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
