package persistent

import (
	"context"
	"testing"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryRepository_CreateWithAssociations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	co := createUser(t, db, "co@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")
	location := &model.LocationModel{Name: "Dhaka", Slug: "dhaka"}
	require.NoError(t, db.Create(location).Error)

	story := newTestStory(author.ID, category.ID, "River Stories")
	story.CoAuthors = []entity.UserSummary{{ID: co.ID}, {ID: co.ID}, {ID: author.ID}}
	story.Tags = []entity.Tag{{Name: "Rural Life"}, {Name: "rural life"}}
	story.Locations = []entity.Location{{ID: location.ID}}
	story.Sources = []entity.Source{{Type: "book", Title: "Field notes"}}

	require.NoError(t, repo.Create(ctx, story))

	assert.NotEmpty(t, story.ID)
	require.Len(t, story.CoAuthors, 1)
	assert.Equal(t, co.ID, story.CoAuthors[0].ID)
	require.Len(t, story.Tags, 1)
	assert.Equal(t, "rural-life", story.Tags[0].Slug)
	require.Len(t, story.Locations, 1)
	require.Len(t, story.Sources, 1)
	require.NotNil(t, story.Author)
	assert.Equal(t, author.ID, story.Author.ID)
	assert.JSONEq(t, `{"ops":[{"insert":"hello world\n"}]}`, string(story.Body))
}

func TestStoryRepository_DuplicateSlugIsConflict(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")

	first := newTestStory(author.ID, category.ID, "Same Title")
	first.Slug = "same-title-abc123"
	require.NoError(t, repo.Create(ctx, first))

	second := newTestStory(author.ID, category.ID, "Same Title")
	second.Slug = "same-title-abc123"
	err := repo.Create(ctx, second)

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestStoryRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	co := createUser(t, db, "co@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")

	published := newTestStory(author.ID, category.ID, "Monsoon Diary")
	published.Status = entity.StoryStatusPublished
	published.Tags = []entity.Tag{{Name: "Weather"}}
	require.NoError(t, repo.Create(ctx, published))

	draft := newTestStory(author.ID, category.ID, "Unfinished Draft")
	draft.CoAuthors = []entity.UserSummary{{ID: co.ID}}
	require.NoError(t, repo.Create(ctx, draft))

	stories, total, err := repo.List(ctx, entity.StoryFilter{Statuses: []entity.StoryStatus{entity.StoryStatusPublished}}, firstPage(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, stories, 1)
	assert.Equal(t, published.ID, stories[0].ID)

	stories, total, err = repo.List(ctx, entity.StoryFilter{Search: "weather"}, firstPage(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, published.ID, stories[0].ID)

	stories, total, err = repo.List(ctx, entity.StoryFilter{MemberID: co.ID}, firstPage(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, draft.ID, stories[0].ID)

	_, total, err = repo.List(ctx, entity.StoryFilter{MemberID: author.ID}, firstPage(1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestStoryRepository_UpdateReplacesSets(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")

	story := newTestStory(author.ID, category.ID, "Tagged Story")
	story.Tags = []entity.Tag{{Name: "one"}, {Name: "two"}}
	story.Sources = []entity.Source{{Type: "web", Title: "a"}, {Type: "web", Title: "b"}}
	require.NoError(t, repo.Create(ctx, story))

	story.Title = "Retitled Story"
	story.AllowComments = false
	story.Tags = []entity.Tag{{Name: "three"}}
	story.Sources = nil
	require.NoError(t, repo.Update(ctx, story, AssocTags))

	assert.Equal(t, "Retitled Story", story.Title)
	assert.False(t, story.AllowComments)
	require.Len(t, story.Tags, 1)
	assert.Equal(t, "three", story.Tags[0].Name)
	assert.Len(t, story.Sources, 2, "sources were not named for replacement")
}

func TestStoryRepository_WorkflowAndViews(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")
	story := newTestStory(author.ID, category.ID, "Workflow Story")
	require.NoError(t, repo.Create(ctx, story))

	now := time.Now()
	story.Status = entity.StoryStatusPublished
	story.PublishedAt = &now
	require.NoError(t, repo.UpdateWorkflow(ctx, story))
	require.NoError(t, repo.IncrementViews(ctx, story.ID))
	require.NoError(t, repo.IncrementViews(ctx, story.ID))

	loaded, err := repo.GetByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StoryStatusPublished, loaded.Status)
	assert.NotNil(t, loaded.PublishedAt)
	assert.Equal(t, 2, loaded.ViewCount)
}

func TestStoryRepository_DeleteReleasesMedia(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewStoryRepository(db)
	mediaRepo := NewMediaRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "news")
	story := newTestStory(author.ID, category.ID, "Story With Media")
	require.NoError(t, repo.Create(ctx, story))

	media := &entity.Media{
		Filename: "a.jpg", OriginalName: "a.jpg", MimeType: "image/jpeg", Size: 10,
		Type: entity.MediaTypeImage, StorageKey: "images/a.jpg", URL: "/uploads/images/a.jpg", UploadedByID: author.ID,
	}
	require.NoError(t, mediaRepo.Create(ctx, media))
	require.NoError(t, mediaRepo.Attach(ctx, media.ID, story.ID, 0))

	require.NoError(t, repo.Delete(ctx, story.ID))

	_, err := repo.GetByID(ctx, story.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	released, err := mediaRepo.GetByID(ctx, media.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, released.UsageCount)

	err = repo.Delete(ctx, story.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
