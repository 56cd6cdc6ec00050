package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaModel struct {
	ID           string    `gorm:"size:36;primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null" json:"filename"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	MimeType     string    `gorm:"size:150;not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	Type         string    `gorm:"size:20;not null;index" json:"type"`
	StorageKey   string    `gorm:"size:500;uniqueIndex;not null" json:"storage_key"`
	URL          string    `gorm:"size:1000;not null" json:"url"`
	AltText      string    `gorm:"size:500" json:"alt_text"`
	Caption      string    `gorm:"type:text" json:"caption"`
	Credit       string    `gorm:"size:255" json:"credit"`
	UsageCount   int       `gorm:"not null;default:0" json:"usage_count"`
	UploadedByID string    `gorm:"size:36;not null;index" json:"uploaded_by_id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
