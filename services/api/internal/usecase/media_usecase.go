package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/storage"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"
)

type UploadMediaInput struct {
	File         io.Reader
	OriginalName string
	MimeType     string
	Size         int64
	AltText      string
	Caption      string
	Credit       string
}

type UpdateMediaInput struct {
	AltText *string
	Caption *string
	Credit  *string
}

type MediaUseCase interface {
	Upload(ctx context.Context, ownerID string, input UploadMediaInput) (*entity.Media, error)
	List(ctx context.Context, ownerID string, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error)
	Get(ctx context.Context, id, ownerID string) (*entity.Media, error)
	Update(ctx context.Context, id, ownerID string, input UpdateMediaInput) (*entity.Media, error)
	Delete(ctx context.Context, id, ownerID string) error
	Attach(ctx context.Context, id, ownerID, storyID string, order int) error
	Detach(ctx context.Context, id, ownerID, storyID string) error
	StorageUsage(ctx context.Context, ownerID string) (*entity.StorageUsage, error)
}

type mediaUseCase struct {
	mediaRepo persistent.MediaRepository
	storyRepo persistent.StoryRepository
	storage   storage.Storage
	logger    *logger.Logger
}

func NewMediaUseCase(
	mediaRepo persistent.MediaRepository,
	storyRepo persistent.StoryRepository,
	store storage.Storage,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		mediaRepo: mediaRepo,
		storyRepo: storyRepo,
		storage:   store,
		logger:    logger,
	}
}

func (uc *mediaUseCase) Upload(ctx context.Context, ownerID string, input UploadMediaInput) (*entity.Media, error) {
	mediaType, maxSize, ext, ok := entity.ClassifyMedia(input.MimeType)
	if !ok {
		return nil, apperror.Validation("Invalid file", apperror.FieldIssue{Field: "file", Issue: fmt.Sprintf("file type %q is not allowed", input.MimeType)})
	}
	if input.Size <= 0 {
		return nil, apperror.Validation("Invalid file", apperror.FieldIssue{Field: "file", Issue: "file is empty"})
	}
	if input.Size > maxSize {
		return nil, apperror.Validation("Invalid file", apperror.FieldIssue{
			Field: "file",
			Issue: fmt.Sprintf("%s files must be at most %d MB", mediaType, maxSize>>20),
		})
	}

	key := entity.NewStorageKey(mediaType, ext, time.Now())
	if err := uc.storage.Write(ctx, key, input.File, input.Size, input.MimeType); err != nil {
		return nil, apperror.Internal("Failed to store file", err)
	}

	media := &entity.Media{
		Filename:     path.Base(key),
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         input.Size,
		Type:         mediaType,
		StorageKey:   key,
		URL:          uc.storage.URL(key),
		AltText:      input.AltText,
		Caption:      input.Caption,
		Credit:       input.Credit,
		UploadedByID: ownerID,
	}
	if err := uc.mediaRepo.Create(ctx, media); err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned file %s: %v", key, delErr)
		}
		return nil, wrapRepoError("Failed to save media", err)
	}

	logger.FromContext(ctx).Info("Media uploaded: %s (%s, %d bytes)", media.ID, media.MimeType, media.Size)
	return media, nil
}

func (uc *mediaUseCase) List(ctx context.Context, ownerID string, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, 0, apperror.Validation("Invalid filter", apperror.FieldIssue{Field: "type", Issue: "must be one of IMAGE, VIDEO, AUDIO, DOCUMENT"})
	}
	filter.OwnerID = ownerID

	items, total, err := uc.mediaRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list media", err)
	}
	return items, total, nil
}

func (uc *mediaUseCase) Get(ctx context.Context, id, ownerID string) (*entity.Media, error) {
	return uc.owned(ctx, id, ownerID)
}

func (uc *mediaUseCase) Update(ctx context.Context, id, ownerID string, input UpdateMediaInput) (*entity.Media, error) {
	media, err := uc.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.AltText != nil {
		media.AltText = *input.AltText
	}
	if input.Caption != nil {
		media.Caption = *input.Caption
	}
	if input.Credit != nil {
		media.Credit = *input.Credit
	}

	if err := uc.mediaRepo.UpdateMetadata(ctx, media); err != nil {
		return nil, wrapRepoError("Failed to update media", err)
	}
	return media, nil
}

// Delete removes the record first so that a file is never orphaned from a
// live row; a storage failure afterwards is only logged.
func (uc *mediaUseCase) Delete(ctx context.Context, id, ownerID string) error {
	media, err := uc.owned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if err := uc.mediaRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("Failed to delete media", err)
	}
	if err := uc.storage.Delete(ctx, media.StorageKey); err != nil {
		logger.FromContext(ctx).Warn("Failed to delete file %s: %v", media.StorageKey, err)
	}
	return nil
}

func (uc *mediaUseCase) Attach(ctx context.Context, id, ownerID, storyID string, order int) error {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := uc.editableStory(ctx, storyID, ownerID); err != nil {
		return err
	}
	if order < 0 {
		return apperror.Validation("Invalid attachment", apperror.FieldIssue{Field: "order", Issue: "must not be negative"})
	}

	if err := uc.mediaRepo.Attach(ctx, id, storyID, order); err != nil {
		return wrapRepoError("Failed to attach media", err)
	}
	return nil
}

func (uc *mediaUseCase) Detach(ctx context.Context, id, ownerID, storyID string) error {
	if _, err := uc.owned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := uc.editableStory(ctx, storyID, ownerID); err != nil {
		return err
	}

	if err := uc.mediaRepo.Detach(ctx, id, storyID); err != nil {
		return wrapRepoError("Failed to detach media", err)
	}
	return nil
}

func (uc *mediaUseCase) StorageUsage(ctx context.Context, ownerID string) (*entity.StorageUsage, error) {
	usage, err := uc.mediaRepo.Usage(ctx, ownerID)
	if err != nil {
		return nil, wrapRepoError("Failed to compute storage usage", err)
	}
	return usage, nil
}

func (uc *mediaUseCase) owned(ctx context.Context, id, ownerID string) (*entity.Media, error) {
	media, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load media", err)
	}
	if media.UploadedByID != ownerID {
		return nil, apperror.Forbidden("You do not have access to this media")
	}
	return media, nil
}

func (uc *mediaUseCase) editableStory(ctx context.Context, storyID, actorID string) error {
	story, err := uc.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return wrapRepoError("Failed to load story", err)
	}
	if !story.CanEdit(actorID) {
		return apperror.Forbidden("You do not have permission to edit this story")
	}
	return nil
}
