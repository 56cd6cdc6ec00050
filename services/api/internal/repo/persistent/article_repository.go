package persistent

import (
	"context"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var articleSortColumns = map[string]string{
	"createdAt":   "created_at",
	"publishedAt": "published_at",
	"views":       "views",
	"title":       "title",
}

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	List(ctx context.Context, filter entity.ArticleFilter, page pagination.Params) ([]*entity.Article, int64, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleModel := ToArticleModel(article)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(articleModel).Error; err != nil {
		return translateError(err, "Article not found")
	}
	article.ID = articleModel.ID
	article.CreatedAt = articleModel.CreatedAt
	article.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("id = ?", id).
		First(&articleModel).Error
	if err != nil {
		return nil, translateError(err, "Article not found")
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) filtered(ctx context.Context, filter entity.ArticleFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.ArticleModel{})
	if filter.CategoryID != "" {
		query = query.Where("articles.category_id = ?", filter.CategoryID)
	}
	if filter.AuthorID != "" {
		query = query.Where("articles.author_id = ?", filter.AuthorID)
	}
	if filter.Status != "" {
		query = query.Where("articles.status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(articles.title) LIKE ? OR LOWER(articles.summary) LIKE ?)", pattern, pattern)
	}
	return query
}

func (r *articleRepository) List(ctx context.Context, filter entity.ArticleFilter, page pagination.Params) ([]*entity.Article, int64, error) {
	var (
		total         int64
		articleModels []model.ArticleModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Preload("Author").
			Preload("Category").
			Order(orderBy("articles", articleSortColumns, page)).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Find(&articleModels).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, total, nil
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	articleModel := ToArticleModel(article)
	result := r.db.WithContext(ctx).Model(&model.ArticleModel{ID: article.ID}).
		Select("title", "summary", "content", "image_url", "status", "category_id", "published_at", "updated_at").
		Updates(articleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Article not found")
	}
	article.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.ArticleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Article not found")
	}
	return nil
}

func (r *articleRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}
