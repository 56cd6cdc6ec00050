package persistent

import (
	"context"
	"testing"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMedia(ownerID, key string, size int64) *entity.Media {
	return &entity.Media{
		Filename:     key,
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		Size:         size,
		Type:         entity.MediaTypeImage,
		StorageKey:   key,
		URL:          "/uploads/" + key,
		UploadedByID: ownerID,
	}
}

func TestMediaRepository_AttachDetachGuardsDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewMediaRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")
	story := newTestStory(author.ID, category.ID, "Illustrated")
	require.NoError(t, NewStoryRepository(db).Create(ctx, story))

	media := newTestMedia(author.ID, "images/1.jpg", 100)
	require.NoError(t, repo.Create(ctx, media))

	require.NoError(t, repo.Attach(ctx, media.ID, story.ID, 1))
	err := repo.Attach(ctx, media.ID, story.ID, 2)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	err = repo.Delete(ctx, media.ID)
	assert.True(t, apperror.Is(err, apperror.KindConflict))

	attached, err := repo.GetByID(ctx, media.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, attached.UsageCount)

	require.NoError(t, repo.Detach(ctx, media.ID, story.ID))
	err = repo.Detach(ctx, media.ID, story.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	require.NoError(t, repo.Delete(ctx, media.ID))
	_, err = repo.GetByID(ctx, media.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestMediaRepository_ListAndUsage(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewMediaRepository(db)

	owner := createUser(t, db, "owner@example.com", entity.RoleAuthor)
	other := createUser(t, db, "other@example.com", entity.RoleAuthor)

	require.NoError(t, repo.Create(ctx, newTestMedia(owner.ID, "images/a.jpg", 1<<20)))
	require.NoError(t, repo.Create(ctx, newTestMedia(owner.ID, "images/b.jpg", 1<<19)))
	require.NoError(t, repo.Create(ctx, newTestMedia(other.ID, "images/c.jpg", 5)))

	items, total, err := repo.List(ctx, entity.MediaFilter{OwnerID: owner.ID}, firstPage(1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 1)

	usage, err := repo.Usage(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), usage.TotalFiles)
	assert.Equal(t, int64(1<<20+1<<19), usage.TotalSize)
	assert.Equal(t, 1.5, usage.TotalSizeMB)
}
