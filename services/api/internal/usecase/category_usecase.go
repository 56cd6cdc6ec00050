package usecase

import (
	"context"

	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/repo/persistent"
)

type CategoryUseCase interface {
	List(ctx context.Context) ([]*entity.Category, error)
}

type categoryUseCase struct {
	taxonomyRepo persistent.TaxonomyRepository
}

func NewCategoryUseCase(taxonomyRepo persistent.TaxonomyRepository) CategoryUseCase {
	return &categoryUseCase{taxonomyRepo: taxonomyRepo}
}

func (uc *categoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.taxonomyRepo.ListCategories(ctx)
	if err != nil {
		return nil, wrapRepoError("Failed to list categories", err)
	}
	return categories, nil
}
