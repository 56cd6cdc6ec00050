package persistent

import (
	"context"
	"errors"
	"strings"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	userModel.Email = strings.ToLower(strings.TrimSpace(userModel.Email))

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Email already registered")
		}
		return err
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateError(err, "User not found")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translateError(err, "User not found")
	}
	return ToUserEntity(&userModel), nil
}

// UpdateProfile writes the self-editable profile columns only.
func (r *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	result := r.db.WithContext(ctx).Model(&model.UserModel{ID: user.ID}).
		Select("name", "name_bn", "bio", "bio_bn", "avatar_url", "updated_at").
		Updates(userModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

func (r *userRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
