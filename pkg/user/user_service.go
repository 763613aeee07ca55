package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserById(ctx context.Context, id string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetUser(ctx, userId)
}

func (s *ServiceImpl) GetUserById(ctx context.Context, id string) (User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	user.Id = uuid.NewString()
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *ServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == ErrUserNotFound {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (s *ServiceImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteUser(ctx, id)
}
