package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRepoStub = &StubUserRepo{}

var service Service

func setup(t *testing.T) func() {
	service = NewUserService(userRepoStub)
	return func() {
		t.Log("Teardown after test")
		userRepoStub.Cleanup()
	}
}

func TestServiceImpl_CreateUser(t *testing.T) {
	t.Run("should assign id and default display name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateUser(context.Background(), User{Username: "anna"})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "anna", created.Username)
		assert.Equal(t, "anna", created.DisplayName)
	})

	t.Run("should keep an explicit display name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateUser(context.Background(), User{Username: "anna", DisplayName: "Anna M."})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Anna M.", created.DisplayName)
	})
}

func TestServiceImpl_GetCurrentUser(t *testing.T) {
	t.Run("should resolve the user from the context", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "anna"})
		require.NoError(t, err)
		ctx := WithUser(context.Background(), created)

		// when
		current, err := service.GetCurrentUser(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, created, current)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetCurrentUser(context.Background())

		// then
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrNoUser)
	})
}

func TestServiceImpl_IsUsernameAvailable(t *testing.T) {
	t.Run("should report a taken username", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.CreateUser(context.Background(), User{Username: "anna"})
		require.NoError(t, err)

		// when
		available, err := service.IsUsernameAvailable(context.Background(), "anna")

		// then
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("should report a free username", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		available, err := service.IsUsernameAvailable(context.Background(), "ben")

		// then
		assert.NoError(t, err)
		assert.True(t, available)
	})
}

func TestServiceImpl_DeleteUser(t *testing.T) {
	t.Run("should delete an existing user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "anna"})
		require.NoError(t, err)

		// when
		deleted, err := service.DeleteUser(context.Background(), created.Id)

		// then
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, userRepoStub.Users)
	})

	t.Run("should report false for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		deleted, err := service.DeleteUser(context.Background(), "missing")

		// then
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
