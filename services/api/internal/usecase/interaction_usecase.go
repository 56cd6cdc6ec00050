package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"
)

const maxCommentLength = 5000

// InteractionUseCase covers reader activity on published stories.
type InteractionUseCase interface {
	ListComments(ctx context.Context, storyID string, page pagination.Params) ([]*entity.Comment, int64, error)
	AddComment(ctx context.Context, storyID, userID, content string) (*entity.Comment, error)
	Bookmark(ctx context.Context, storyID, userID string) error
	RemoveBookmark(ctx context.Context, storyID, userID string) error
	React(ctx context.Context, storyID, userID string) error
	Share(ctx context.Context, storyID, userID string) error
}

type interactionUseCase struct {
	storyRepo       persistent.StoryRepository
	interactionRepo persistent.InteractionRepository
	logger          *logger.Logger
}

func NewInteractionUseCase(
	storyRepo persistent.StoryRepository,
	interactionRepo persistent.InteractionRepository,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		storyRepo:       storyRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
	}
}

func (uc *interactionUseCase) ListComments(ctx context.Context, storyID string, page pagination.Params) ([]*entity.Comment, int64, error) {
	if _, err := uc.publishedStory(ctx, storyID); err != nil {
		return nil, 0, err
	}

	comments, total, err := uc.interactionRepo.ListComments(ctx, storyID, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list comments", err)
	}
	return comments, total, nil
}

func (uc *interactionUseCase) AddComment(ctx context.Context, storyID, userID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxCommentLength {
		return nil, apperror.Validation("Invalid comment", apperror.FieldIssue{Field: "content", Issue: "must be between 1 and 5000 characters"})
	}

	story, err := uc.publishedStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if !story.AllowComments {
		return nil, apperror.InvalidOperation("Comments are disabled for this story")
	}

	comment := &entity.Comment{StoryID: storyID, UserID: userID, Content: content}
	if err := uc.interactionRepo.CreateComment(ctx, comment); err != nil {
		return nil, wrapRepoError("Failed to add comment", err)
	}
	return comment, nil
}

func (uc *interactionUseCase) Bookmark(ctx context.Context, storyID, userID string) error {
	if _, err := uc.publishedStory(ctx, storyID); err != nil {
		return err
	}
	if _, err := uc.interactionRepo.AddBookmark(ctx, userID, storyID); err != nil {
		return wrapRepoError("Failed to bookmark story", err)
	}
	return nil
}

func (uc *interactionUseCase) RemoveBookmark(ctx context.Context, storyID, userID string) error {
	if err := uc.interactionRepo.RemoveBookmark(ctx, userID, storyID); err != nil {
		return wrapRepoError("Failed to remove bookmark", err)
	}
	return nil
}

func (uc *interactionUseCase) React(ctx context.Context, storyID, userID string) error {
	if _, err := uc.publishedStory(ctx, storyID); err != nil {
		return err
	}
	if err := uc.interactionRepo.AddEngagement(ctx, userID, storyID, entity.EngagementReaction); err != nil {
		return wrapRepoError("Failed to react to story", err)
	}
	return nil
}

func (uc *interactionUseCase) Share(ctx context.Context, storyID, userID string) error {
	story, err := uc.publishedStory(ctx, storyID)
	if err != nil {
		return err
	}
	if !story.AllowSharing {
		return apperror.InvalidOperation("Sharing is disabled for this story")
	}
	if err := uc.interactionRepo.AddEngagement(ctx, userID, storyID, entity.EngagementShare); err != nil {
		return wrapRepoError("Failed to share story", err)
	}
	return nil
}

// publishedStory loads a story readers may interact with. Unpublished stories
// are reported as missing.
func (uc *interactionUseCase) publishedStory(ctx context.Context, storyID string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, wrapRepoError("Failed to load story", err)
	}
	if story.Status != entity.StoryStatusPublished {
		return nil, apperror.NotFound("Story not found")
	}
	return story, nil
}
