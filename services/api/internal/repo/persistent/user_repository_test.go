package persistent

import (
	"context"
	"testing"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := createUser(t, db, "Writer@Example.com", entity.RoleAuthor)
	assert.Equal(t, "writer@example.com", user.Email)

	found, err := repo.GetByEmail(ctx, "WRITER@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	dup := &entity.User{Email: "writer@example.com", Password: "x", Name: "Dup", Role: entity.RoleReader, Status: entity.UserStatusActive}
	err = repo.Create(ctx, dup)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	count, err := repo.CountByIDs(ctx, []string{user.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := createUser(t, db, "writer@example.com", entity.RoleAuthor)
	user.Bio = "Writes about rivers"
	user.Role = entity.RoleAdmin
	require.NoError(t, repo.UpdateProfile(ctx, user))

	loaded, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Writes about rivers", loaded.Bio)
	assert.Equal(t, entity.RoleAuthor, loaded.Role, "role is not self-editable")
}
