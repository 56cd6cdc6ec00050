package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoryID   string    `gorm:"size:36;not null;index" json:"story_id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	User      UserModel `gorm:"foreignKey:UserID" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type SavedContentModel struct {
	UserID    string    `gorm:"size:36;primaryKey" json:"user_id"`
	StoryID   string    `gorm:"size:36;primaryKey;index" json:"story_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedContentModel) TableName() string {
	return "saved_contents"
}

type ContentEngagementModel struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	StoryID   string    `gorm:"size:36;not null;index" json:"story_id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContentEngagementModel) TableName() string {
	return "content_engagements"
}

func (e *ContentEngagementModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
