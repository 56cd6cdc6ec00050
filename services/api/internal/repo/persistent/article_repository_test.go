package persistent

import (
	"context"
	"testing"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewArticleRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "culture")

	article := &entity.Article{
		Title:      "Harvest Festival",
		Content:    "Nabanna is celebrated in late autumn.",
		Status:     entity.ArticleStatusDraft,
		CategoryID: category.ID,
		AuthorID:   author.ID,
	}
	require.NoError(t, repo.Create(ctx, article))
	require.NotEmpty(t, article.ID)

	require.NoError(t, repo.IncrementViews(ctx, article.ID))

	loaded, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Views)
	require.NotNil(t, loaded.Author)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, "culture", loaded.Category.Slug)

	loaded.Status = entity.ArticleStatusPublished
	require.NoError(t, repo.Update(ctx, loaded))

	require.NoError(t, repo.Delete(ctx, article.ID))
	_, err = repo.GetByID(ctx, article.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.True(t, apperror.Is(repo.Delete(ctx, article.ID), apperror.KindNotFound))
}

func TestArticleRepository_ListFiltersAndSort(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewArticleRepository(db)

	author := createUser(t, db, "author@example.com", entity.RoleAuthor)
	category := createCategory(t, db, "culture")

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		require.NoError(t, repo.Create(ctx, &entity.Article{
			Title: title, Content: "body", Status: entity.ArticleStatusPublished,
			CategoryID: category.ID, AuthorID: author.ID,
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Article{
		Title: "Hidden", Content: "body", Status: entity.ArticleStatusDraft,
		CategoryID: category.ID, AuthorID: author.ID,
	}))

	page := pagination.Params{Page: 1, PerPage: 2, Sort: "title", Order: pagination.OrderAsc}
	articles, total, err := repo.List(ctx, entity.ArticleFilter{Status: entity.ArticleStatusPublished}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, articles, 2)
	assert.Equal(t, "Alpha", articles[0].Title)
	assert.Equal(t, "Beta", articles[1].Title)

	articles, total, err = repo.List(ctx, entity.ArticleFilter{Search: "GAM"}, firstPage(20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Gamma", articles[0].Title)
}
