package persistent

import (
	"context"

	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var commentSortColumns = map[string]string{
	"createdAt": "created_at",
}

var engagementCounters = map[entity.EngagementType]string{
	entity.EngagementReaction: "reaction_count",
	entity.EngagementShare:    "share_count",
}

// InteractionRepository stores reader activity on stories and keeps the
// denormalized story counters in step.
type InteractionRepository interface {
	CreateComment(ctx context.Context, comment *entity.Comment) error
	ListComments(ctx context.Context, storyID string, page pagination.Params) ([]*entity.Comment, int64, error)
	AddBookmark(ctx context.Context, userID, storyID string) (bool, error)
	RemoveBookmark(ctx context.Context, userID, storyID string) error
	AddEngagement(ctx context.Context, userID, storyID string, kind entity.EngagementType) error
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		StoryID: comment.StoryID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(commentModel).Error; err != nil {
			return err
		}
		return bumpStoryCounter(tx, comment.StoryID, "comment_count", 1)
	})
	if err != nil {
		return err
	}

	var loaded model.CommentModel
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", commentModel.ID).First(&loaded).Error; err != nil {
		return translateError(err, "Comment not found")
	}
	*comment = *ToCommentEntity(&loaded)
	return nil
}

func (r *interactionRepository) ListComments(ctx context.Context, storyID string, page pagination.Params) ([]*entity.Comment, int64, error) {
	var (
		total         int64
		commentModels []model.CommentModel
	)

	base := func(ctx context.Context) *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("story_id = ?", storyID)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return base(gctx).Count(&total).Error
	})
	g.Go(func() error {
		return base(gctx).
			Preload("User").
			Order(orderBy("comments", commentSortColumns, page)).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Find(&commentModels).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}

// AddBookmark is idempotent; it reports whether a new bookmark was stored.
func (r *interactionRepository) AddBookmark(ctx context.Context, userID, storyID string) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.SavedContentModel{UserID: userID, StoryID: storyID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true
		return bumpStoryCounter(tx, storyID, "bookmark_count", 1)
	})
	return created, err
}

func (r *interactionRepository) RemoveBookmark(ctx context.Context, userID, storyID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND story_id = ?", userID, storyID).Delete(&model.SavedContentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return bumpStoryCounter(tx, storyID, "bookmark_count", -1)
	})
}

func (r *interactionRepository) AddEngagement(ctx context.Context, userID, storyID string, kind entity.EngagementType) error {
	counter, ok := engagementCounters[kind]
	if !ok {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		engagement := &model.ContentEngagementModel{StoryID: storyID, UserID: userID, Type: string(kind)}
		if err := tx.Create(engagement).Error; err != nil {
			return err
		}
		return bumpStoryCounter(tx, storyID, counter, 1)
	})
}

func bumpStoryCounter(tx *gorm.DB, storyID, column string, delta int) error {
	expr := clause.Expr{SQL: column + " + ?", Vars: []interface{}{delta}}
	if delta < 0 {
		expr = decrementExpr(column)
	}
	return tx.Model(&model.StoryModel{}).Where("id = ?", storyID).UpdateColumn(column, expr).Error
}
