package persistent

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/database"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "sekor_test.db")}
	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:    email,
		Password: "hashed",
		Name:     "User " + email,
		Role:     role,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createCategory(t *testing.T, db *gorm.DB, slug string) *model.CategoryModel {
	t.Helper()

	category := &model.CategoryModel{Name: slug, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func newTestStory(authorID, categoryID, title string) *entity.Story {
	return &entity.Story{
		Title:         title,
		Body:          json.RawMessage(`{"ops":[{"insert":"hello world\n"}]}`),
		Slug:          entity.GenerateSlug(title),
		Language:      entity.LanguageBn,
		ContentType:   entity.ContentTypeStory,
		Status:        entity.StoryStatusDraft,
		CategoryID:    categoryID,
		AuthorID:      authorID,
		Copyright:     entity.CopyrightAllRightsReserved,
		AllowComments: true,
		AllowSharing:  true,
	}
}

func firstPage(perPage int) pagination.Params {
	return pagination.Params{Page: 1, PerPage: perPage, Sort: "createdAt", Order: pagination.OrderDesc}
}
