package persistent

import (
	"context"
	"errors"
	"math"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/pagination"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var mediaSortColumns = map[string]string{
	"createdAt":  "created_at",
	"size":       "size",
	"usageCount": "usage_count",
}

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	GetByID(ctx context.Context, id string) (*entity.Media, error)
	List(ctx context.Context, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error)
	UpdateMetadata(ctx context.Context, media *entity.Media) error
	Delete(ctx context.Context, id string) error
	Attach(ctx context.Context, mediaID, storyID string, order int) error
	Detach(ctx context.Context, mediaID, storyID string) error
	Usage(ctx context.Context, ownerID string) (*entity.StorageUsage, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	mediaModel := ToMediaModel(media)
	if err := r.db.WithContext(ctx).Create(mediaModel).Error; err != nil {
		return translateError(err, "Media not found")
	}
	*media = *ToMediaEntity(mediaModel)
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	var mediaModel model.MediaModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mediaModel).Error; err != nil {
		return nil, translateError(err, "Media not found")
	}
	return ToMediaEntity(&mediaModel), nil
}

func (r *mediaRepository) filtered(ctx context.Context, filter entity.MediaFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.MediaModel{})
	if filter.OwnerID != "" {
		query = query.Where("uploaded_by_id = ?", filter.OwnerID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(LOWER(original_name) LIKE ? OR LOWER(alt_text) LIKE ? OR LOWER(caption) LIKE ?)", pattern, pattern, pattern)
	}
	return query
}

func (r *mediaRepository) List(ctx context.Context, filter entity.MediaFilter, page pagination.Params) ([]*entity.Media, int64, error) {
	var (
		total       int64
		mediaModels []model.MediaModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.filtered(gctx, filter).Count(&total).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, filter).
			Order(orderBy("media", mediaSortColumns, page)).
			Limit(page.PerPage).
			Offset(page.Offset()).
			Find(&mediaModels).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	items := make([]*entity.Media, len(mediaModels))
	for i := range mediaModels {
		items[i] = ToMediaEntity(&mediaModels[i])
	}
	return items, total, nil
}

func (r *mediaRepository) UpdateMetadata(ctx context.Context, media *entity.Media) error {
	mediaModel := ToMediaModel(media)
	result := r.db.WithContext(ctx).Model(&model.MediaModel{ID: media.ID}).
		Select("alt_text", "caption", "credit", "updated_at").
		Updates(mediaModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Media not found")
	}
	media.UpdatedAt = mediaModel.UpdatedAt
	return nil
}

// Delete refuses media that is still referenced by a story.
func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mediaModel model.MediaModel
		if err := tx.Where("id = ?", id).First(&mediaModel).Error; err != nil {
			return translateError(err, "Media not found")
		}

		var attached int64
		if err := tx.Model(&model.StoryMediaModel{}).Where("media_id = ?", id).Count(&attached).Error; err != nil {
			return err
		}
		if mediaModel.UsageCount > 0 || attached > 0 {
			return apperror.Conflict("Media is in use and cannot be deleted")
		}

		return tx.Delete(&model.MediaModel{}, "id = ?", id).Error
	})
}

func (r *mediaRepository) Attach(ctx context.Context, mediaID, storyID string, order int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link := model.StoryMediaModel{StoryID: storyID, MediaID: mediaID, Order: order}
		if err := tx.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("Media is already attached to this story")
			}
			return err
		}
		return tx.Model(&model.MediaModel{}).Where("id = ?", mediaID).
			UpdateColumn("usage_count", clause.Expr{SQL: "usage_count + ?", Vars: []interface{}{1}}).Error
	})
}

func (r *mediaRepository) Detach(ctx context.Context, mediaID, storyID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("story_id = ? AND media_id = ?", storyID, mediaID).Delete(&model.StoryMediaModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NotFound("Media is not attached to this story")
		}
		return tx.Model(&model.MediaModel{}).Where("id = ?", mediaID).
			UpdateColumn("usage_count", decrementExpr("usage_count")).Error
	})
}

func (r *mediaRepository) Usage(ctx context.Context, ownerID string) (*entity.StorageUsage, error) {
	var row struct {
		TotalFiles int64
		TotalSize  int64
	}
	err := r.db.WithContext(ctx).Model(&model.MediaModel{}).
		Select("COUNT(*) AS total_files, COALESCE(SUM(size), 0) AS total_size").
		Where("uploaded_by_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.StorageUsage{
		TotalFiles:  row.TotalFiles,
		TotalSize:   row.TotalSize,
		TotalSizeMB: math.Round(float64(row.TotalSize)/(1<<20)*100) / 100,
	}, nil
}
