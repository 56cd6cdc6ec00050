package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ID          string        `gorm:"size:36;primaryKey" json:"id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Summary     string        `gorm:"type:text" json:"summary"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	ImageURL    string        `gorm:"size:500" json:"image_url"`
	Status      string        `gorm:"size:20;not null;default:DRAFT;index" json:"status"`
	CategoryID  string        `gorm:"size:36;not null;index" json:"category_id"`
	Category    CategoryModel `gorm:"foreignKey:CategoryID" json:"-"`
	AuthorID    string        `gorm:"size:36;not null;index" json:"author_id"`
	Author      UserModel     `gorm:"foreignKey:AuthorID" json:"-"`
	Views       int           `gorm:"default:0" json:"views"`
	PublishedAt *time.Time    `json:"published_at"`
	CreatedAt   time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
