package user

import "context"

type StubUserRepo struct {
	Users []User
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) error {
	s.Users = append(s.Users, user)
	return nil
}

func (s *StubUserRepo) GetUser(ctx context.Context, id string) (User, error) {
	for _, u := range s.Users {
		if u.Id == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range s.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.Users, nil
}

func (s *StubUserRepo) DeleteUser(ctx context.Context, id string) (bool, error) {
	for i, u := range s.Users {
		if u.Id == id {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubUserRepo) Cleanup() {
	s.Users = nil
}
