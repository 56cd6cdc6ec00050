package usecase

import (
	"context"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/pkg/queue"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"
)

type AuthorUseCase interface {
	List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error)
	Get(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error)
	Follow(ctx context.Context, followerID, authorID string) error
	Unfollow(ctx context.Context, followerID, authorID string) error
	ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error)
}

type authorUseCase struct {
	authorRepo persistent.AuthorRepository
	publisher  queue.Publisher
	logger     *logger.Logger
}

func NewAuthorUseCase(authorRepo persistent.AuthorRepository, publisher queue.Publisher, logger *logger.Logger) AuthorUseCase {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &authorUseCase{
		authorRepo: authorRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *authorUseCase) List(ctx context.Context, filter entity.AuthorFilter, viewerID string, page pagination.Params) ([]*entity.AuthorProfile, int64, error) {
	if filter.Role != "" && !filter.Role.IsAuthor() {
		return nil, 0, apperror.Validation("Invalid filter", apperror.FieldIssue{Field: "role", Issue: "must be one of AUTHOR, EDITOR, ADMIN"})
	}

	authors, total, err := uc.authorRepo.List(ctx, filter, viewerID, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list authors", err)
	}
	return authors, total, nil
}

func (uc *authorUseCase) Get(ctx context.Context, id, viewerID string) (*entity.AuthorProfile, error) {
	author, err := uc.authorRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, wrapRepoError("Failed to load author", err)
	}
	return author, nil
}

// Follow is idempotent. Only eligible authors can be followed.
func (uc *authorUseCase) Follow(ctx context.Context, followerID, authorID string) error {
	if followerID == authorID {
		return apperror.InvalidOperation("You cannot follow yourself")
	}
	if _, err := uc.authorRepo.GetByID(ctx, authorID, ""); err != nil {
		return wrapRepoError("Failed to load author", err)
	}

	created, err := uc.authorRepo.Follow(ctx, followerID, authorID)
	if err != nil {
		return wrapRepoError("Failed to follow author", err)
	}
	if !created {
		return nil
	}

	event := queue.Event{
		Type:       queue.EventAuthorFollowed,
		OccurredAt: time.Now().UTC(),
		Priority:   3,
		Data: map[string]interface{}{
			"follower_id": followerID,
			"author_id":   authorID,
		},
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Error("Failed to publish %s: %v", event.Type, err)
	}
	return nil
}

func (uc *authorUseCase) Unfollow(ctx context.Context, followerID, authorID string) error {
	if err := uc.authorRepo.Unfollow(ctx, followerID, authorID); err != nil {
		return wrapRepoError("Failed to unfollow author", err)
	}
	return nil
}

func (uc *authorUseCase) ListFollowing(ctx context.Context, followerID string, page pagination.Params) ([]*entity.FollowedAuthor, int64, error) {
	authors, total, err := uc.authorRepo.ListFollowing(ctx, followerID, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list followed authors", err)
	}
	return authors, total, nil
}
