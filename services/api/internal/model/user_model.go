package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string         `gorm:"size:36;primaryKey" json:"id"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	NameBn    string         `gorm:"size:100" json:"name_bn"`
	Role      string         `gorm:"size:20;not null;default:READER;index" json:"role"`
	Status    string         `gorm:"size:20;not null;default:ACTIVE;index" json:"status"`
	Bio       string         `gorm:"type:text" json:"bio"`
	BioBn     string         `gorm:"type:text" json:"bio_bn"`
	AvatarURL string         `gorm:"size:500" json:"avatar_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type UserFollowModel struct {
	FollowerID  string    `gorm:"size:36;primaryKey" json:"follower_id"`
	FollowingID string    `gorm:"size:36;primaryKey;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following UserModel `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserFollowModel) TableName() string {
	return "user_follows"
}
