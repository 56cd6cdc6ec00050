package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	NameBn      string    `gorm:"size:100" json:"name_bn"`
	Slug        string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Order       int       `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type TagModel struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (t *TagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type LocationModel struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	NameBn    string    `gorm:"size:100" json:"name_bn"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (LocationModel) TableName() string {
	return "locations"
}

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
