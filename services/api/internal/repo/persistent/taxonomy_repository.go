package persistent

import (
	"context"

	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"gorm.io/gorm"
)

type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CategoryExists(ctx context.Context, id string) (bool, error)
	CountLocations(ctx context.Context, ids []string) (int64, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *taxonomyRepository) CategoryExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *taxonomyRepository) CountLocations(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LocationModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
