package usecase

import (
	"context"
	"strings"
	"time"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"
)

type CreateArticleInput struct {
	Title      string
	Summary    string
	Content    string
	ImageURL   string
	CategoryID string
	Status     entity.ArticleStatus
}

type UpdateArticleInput struct {
	Title      *string
	Summary    *string
	Content    *string
	ImageURL   *string
	CategoryID *string
	Status     *entity.ArticleStatus
}

type ArticleUseCase interface {
	List(ctx context.Context, filter entity.ArticleFilter, viewerID string, page pagination.Params) ([]*entity.Article, int64, error)
	Get(ctx context.Context, id, viewerID string) (*entity.Article, error)
	Create(ctx context.Context, authorID string, input CreateArticleInput) (*entity.Article, error)
	Update(ctx context.Context, id, actorID string, input UpdateArticleInput) (*entity.Article, error)
	Delete(ctx context.Context, id, actorID string) error
}

type articleUseCase struct {
	articleRepo  persistent.ArticleRepository
	taxonomyRepo persistent.TaxonomyRepository
	logger       *logger.Logger
}

func NewArticleUseCase(
	articleRepo persistent.ArticleRepository,
	taxonomyRepo persistent.TaxonomyRepository,
	logger *logger.Logger,
) ArticleUseCase {
	return &articleUseCase{
		articleRepo:  articleRepo,
		taxonomyRepo: taxonomyRepo,
		logger:       logger,
	}
}

// List shows published articles only, unless the viewer filters on their own
// articles.
func (uc *articleUseCase) List(ctx context.Context, filter entity.ArticleFilter, viewerID string, page pagination.Params) ([]*entity.Article, int64, error) {
	if filter.AuthorID == "" || filter.AuthorID != viewerID {
		filter.Status = entity.ArticleStatusPublished
	}

	articles, total, err := uc.articleRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, wrapRepoError("Failed to list articles", err)
	}
	return articles, total, nil
}

// Get hides drafts from everyone but their author and counts the view.
func (uc *articleUseCase) Get(ctx context.Context, id, viewerID string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load article", err)
	}
	if article.Status != entity.ArticleStatusPublished && article.AuthorID != viewerID {
		return nil, apperror.NotFound("Article not found")
	}

	if err := uc.articleRepo.IncrementViews(ctx, id); err != nil {
		logger.FromContext(ctx).Warn("Failed to increment views for article %s: %v", id, err)
	}
	return article, nil
}

func (uc *articleUseCase) Create(ctx context.Context, authorID string, input CreateArticleInput) (*entity.Article, error) {
	if input.Status == "" {
		input.Status = entity.ArticleStatusDraft
	}
	if !input.Status.Valid() {
		return nil, apperror.Validation("Invalid article", apperror.FieldIssue{Field: "status", Issue: "must be DRAFT or PUBLISHED"})
	}
	if err := uc.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	article := &entity.Article{
		Title:      strings.TrimSpace(input.Title),
		Summary:    input.Summary,
		Content:    input.Content,
		ImageURL:   input.ImageURL,
		Status:     input.Status,
		CategoryID: input.CategoryID,
		AuthorID:   authorID,
	}
	if article.Status == entity.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, wrapRepoError("Failed to create article", err)
	}

	created, err := uc.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, wrapRepoError("Failed to load article", err)
	}
	return created, nil
}

func (uc *articleUseCase) Update(ctx context.Context, id, actorID string, input UpdateArticleInput) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load article", err)
	}
	if article.AuthorID != actorID {
		return nil, apperror.Forbidden("You can only update your own articles")
	}

	if input.Title != nil {
		article.Title = strings.TrimSpace(*input.Title)
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.ImageURL != nil {
		article.ImageURL = *input.ImageURL
	}
	if input.CategoryID != nil && *input.CategoryID != article.CategoryID {
		if err := uc.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		article.CategoryID = *input.CategoryID
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.Validation("Invalid article", apperror.FieldIssue{Field: "status", Issue: "must be DRAFT or PUBLISHED"})
		}
		article.Status = *input.Status
		if article.Status == entity.ArticleStatusPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, wrapRepoError("Failed to update article", err)
	}

	updated, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError("Failed to load article", err)
	}
	return updated, nil
}

func (uc *articleUseCase) Delete(ctx context.Context, id, actorID string) error {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return wrapRepoError("Failed to load article", err)
	}
	if article.AuthorID != actorID {
		return apperror.Forbidden("You can only delete your own articles")
	}

	if err := uc.articleRepo.Delete(ctx, id); err != nil {
		return wrapRepoError("Failed to delete article", err)
	}
	return nil
}

func (uc *articleUseCase) ensureCategory(ctx context.Context, categoryID string) error {
	exists, err := uc.taxonomyRepo.CategoryExists(ctx, categoryID)
	if err != nil {
		return apperror.Internal("Failed to load category", err)
	}
	if !exists {
		return apperror.Validation("Invalid category", apperror.FieldIssue{Field: "categoryId", Issue: "category does not exist"})
	}
	return nil
}
