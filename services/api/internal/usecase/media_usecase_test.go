package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/storage"
	"sekor-bkc/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mediaID = "88888888-8888-8888-8888-888888888888"

type mediaFixture struct {
	media   *MockMediaRepository
	stories *MockStoryRepository
	store   *storage.LocalStorage
	uc      MediaUseCase
}

func newMediaFixture(t *testing.T) *mediaFixture {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.LocalConfig{
		BasePath:  t.TempDir(),
		PublicURL: "http://localhost:8080/uploads",
	})
	require.NoError(t, err)

	f := &mediaFixture{
		media:   new(MockMediaRepository),
		stories: new(MockStoryRepository),
		store:   store,
	}
	f.uc = NewMediaUseCase(f.media, f.stories, store, logger.New())
	return f
}

func TestMediaUseCase_Upload(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("Create", mock.Anything, mock.AnythingOfType("*entity.Media")).Return(nil)

	content := "\x89PNG fake image bytes"
	media, err := f.uc.Upload(context.Background(), authorID, UploadMediaInput{
		File:         strings.NewReader(content),
		OriginalName: "river.PNG",
		MimeType:     "image/png",
		Size:         int64(len(content)),
		AltText:      "A river at dusk",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MediaTypeImage, media.Type)
	assert.True(t, strings.HasPrefix(media.StorageKey, "images/"))
	assert.True(t, strings.HasSuffix(media.StorageKey, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+media.StorageKey, media.URL)
	assert.Equal(t, authorID, media.UploadedByID)

	stored, err := os.ReadFile(filepath.Join(f.store.BasePath(), media.StorageKey))
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))
}

func TestMediaUseCase_UploadIgnoresClientExtension(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("Create", mock.Anything, mock.AnythingOfType("*entity.Media")).Return(nil)

	content := "<script>alert(1)</script>"
	media, err := f.uc.Upload(context.Background(), authorID, UploadMediaInput{
		File:         strings.NewReader(content),
		OriginalName: "avatar.html",
		MimeType:     "image/png",
		Size:         int64(len(content)),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(media.StorageKey, ".png"), media.StorageKey)
	assert.True(t, strings.HasSuffix(media.Filename, ".png"), media.Filename)
	assert.Equal(t, "avatar.html", media.OriginalName)
}

func TestMediaUseCase_UploadRejects(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		size     int64
	}{
		{"unsupported type", "application/x-msdownload", 10},
		{"empty file", "image/png", 0},
		{"image over 5MB", "image/jpeg", 5<<20 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMediaFixture(t)

			_, err := f.uc.Upload(context.Background(), authorID, UploadMediaInput{
				File:         strings.NewReader("x"),
				OriginalName: "file.bin",
				MimeType:     tt.mimeType,
				Size:         tt.size,
			})

			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
			f.media.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMediaUseCase_UploadRemovesFileWhenInsertFails(t *testing.T) {
	f := newMediaFixture(t)
	var key string
	f.media.On("Create", mock.Anything, mock.AnythingOfType("*entity.Media")).
		Run(func(args mock.Arguments) { key = args.Get(1).(*entity.Media).StorageKey }).
		Return(errors.New("insert failed"))

	_, err := f.uc.Upload(context.Background(), authorID, UploadMediaInput{
		File:         strings.NewReader("abc"),
		OriginalName: "a.pdf",
		MimeType:     "application/pdf",
		Size:         3,
	})

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	exists, err := f.store.Exists(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMediaUseCase_OwnerOnly(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("GetByID", mock.Anything, mediaID).Return(&entity.Media{ID: mediaID, UploadedByID: authorID}, nil)

	_, err := f.uc.Get(context.Background(), mediaID, readerID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	err = f.uc.Delete(context.Background(), mediaID, readerID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	f.media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMediaUseCase_DeleteInUse(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("GetByID", mock.Anything, mediaID).Return(&entity.Media{ID: mediaID, UploadedByID: authorID, StorageKey: "images/x.png"}, nil)
	f.media.On("Delete", mock.Anything, mediaID).Return(apperror.Conflict("Media is in use and cannot be deleted"))

	err := f.uc.Delete(context.Background(), mediaID, authorID)

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestMediaUseCase_AttachRequiresEditableStory(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("GetByID", mock.Anything, mediaID).Return(&entity.Media{ID: mediaID, UploadedByID: readerID}, nil)
	f.stories.On("GetByID", mock.Anything, storyID).Return(storyWithStatus(entity.StoryStatusDraft), nil)

	err := f.uc.Attach(context.Background(), mediaID, readerID, storyID, 0)

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	f.media.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaUseCase_Attach(t *testing.T) {
	f := newMediaFixture(t)
	f.media.On("GetByID", mock.Anything, mediaID).Return(&entity.Media{ID: mediaID, UploadedByID: coAuthorID}, nil)
	f.stories.On("GetByID", mock.Anything, storyID).Return(storyWithStatus(entity.StoryStatusDraft), nil)
	f.media.On("Attach", mock.Anything, mediaID, storyID, 2).Return(nil)

	require.NoError(t, f.uc.Attach(context.Background(), mediaID, coAuthorID, storyID, 2))
	f.media.AssertExpectations(t)
}
