package repositories

import (
	"context"
	. "server/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndExists(t *testing.T) {
	repo := NewUser(newTestDB(t))
	ctx := context.Background()

	user := NewInvitee("a@x.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	authorized, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, authorized)

	authorized, err = repo.ExistsByEmail(ctx, "never-added@x.com")
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestUserRepository_DuplicateEmailsCoexist(t *testing.T) {
	repo := NewUser(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, NewInvitee("a@x.com")))
	require.NoError(t, repo.Create(ctx, NewInvitee("a@x.com")))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.NotEqual(t, users[0].ID, users[1].ID)
}

func TestUserRepository_Delete_Idempotent(t *testing.T) {
	repo := NewUser(newTestDB(t))
	ctx := context.Background()

	user := NewInvitee("a@x.com")
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))
	require.NoError(t, repo.Delete(ctx, user.ID), "second delete of the same id is still success")

	authorized, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUser(newTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, NewInvitee("a@x.com")))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
