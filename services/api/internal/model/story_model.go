package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoryModel struct {
	ID         string         `gorm:"size:36;primaryKey" json:"id"`
	Title      string         `gorm:"size:200;not null" json:"title"`
	TitleBn    string         `gorm:"size:200" json:"title_bn"`
	TitleEn    string         `gorm:"size:200" json:"title_en"`
	Abstract   string         `gorm:"type:text" json:"abstract"`
	AbstractBn string         `gorm:"type:text" json:"abstract_bn"`
	AbstractEn string         `gorm:"type:text" json:"abstract_en"`
	Body       datatypes.JSON `gorm:"not null" json:"body"`
	BodyBn     datatypes.JSON `json:"body_bn"`
	BodyEn     datatypes.JSON `json:"body_en"`
	Slug       string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`

	Thumbnail    string `gorm:"size:500" json:"thumbnail"`
	ThumbnailAlt string `gorm:"size:255" json:"thumbnail_alt"`
	Language     string `gorm:"size:10;not null;default:BN" json:"language"`
	ContentType  string `gorm:"size:20;not null;default:STORY" json:"content_type"`
	Status       string `gorm:"size:30;not null;default:DRAFT;index" json:"status"`

	CategoryID  string        `gorm:"size:36;not null;index" json:"category_id"`
	Category    CategoryModel `gorm:"foreignKey:CategoryID" json:"-"`
	AuthorID    string        `gorm:"size:36;not null;index" json:"author_id"`
	Author      UserModel     `gorm:"foreignKey:AuthorID" json:"-"`
	ReviewerID  *string       `gorm:"size:36;index" json:"reviewer_id"`
	ReviewNotes string        `gorm:"type:text" json:"review_notes"`

	Copyright     string `gorm:"size:30;not null;default:ALL_RIGHTS_RESERVED" json:"copyright"`
	AllowComments bool   `gorm:"not null" json:"allow_comments"`
	AllowSharing  bool   `gorm:"not null" json:"allow_sharing"`
	IsPremium     bool   `gorm:"not null" json:"is_premium"`

	WordCount      int `gorm:"default:0" json:"word_count"`
	ReadingTime    int `gorm:"default:0" json:"reading_time"`
	ViewCount      int `gorm:"default:0;index" json:"view_count"`
	UniqueVisitors int `gorm:"default:0" json:"unique_visitors"`
	ReactionCount  int `gorm:"default:0" json:"reaction_count"`
	CommentCount   int `gorm:"default:0" json:"comment_count"`
	ShareCount     int `gorm:"default:0" json:"share_count"`
	BookmarkCount  int `gorm:"default:0" json:"bookmark_count"`

	CoAuthors []UserModel        `gorm:"many2many:story_co_authors;joinForeignKey:StoryID;joinReferences:UserID" json:"-"`
	Tags      []TagModel         `gorm:"many2many:story_tags;joinForeignKey:StoryID;joinReferences:TagID" json:"-"`
	Locations []LocationModel    `gorm:"many2many:story_locations;joinForeignKey:StoryID;joinReferences:LocationID" json:"-"`
	Sources   []StorySourceModel `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE" json:"-"`
	Media     []StoryMediaModel  `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"index" json:"updated_at"`
	PublishedAt  *time.Time `gorm:"index" json:"published_at"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

func (StoryModel) TableName() string {
	return "stories"
}

func (s *StoryModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type StorySourceModel struct {
	ID           string     `gorm:"size:36;primaryKey" json:"id"`
	StoryID      string     `gorm:"size:36;not null;index" json:"story_id"`
	Type         string     `gorm:"size:50;not null" json:"type"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Author       string     `gorm:"size:255" json:"author"`
	URL          string     `gorm:"size:1000" json:"url"`
	DateAccessed *time.Time `json:"date_accessed"`
	Notes        string     `gorm:"type:text" json:"notes"`
}

func (StorySourceModel) TableName() string {
	return "story_sources"
}

func (s *StorySourceModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type StoryMediaModel struct {
	StoryID   string     `gorm:"size:36;primaryKey" json:"story_id"`
	MediaID   string     `gorm:"size:36;primaryKey;index" json:"media_id"`
	Order     int        `gorm:"column:sort_order;default:0" json:"order"`
	Media     MediaModel `gorm:"foreignKey:MediaID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

func (StoryMediaModel) TableName() string {
	return "story_media"
}

// Join rows for the story many-to-many sets, written directly so that
// replacing a set never upserts the referenced rows.

type StoryCoAuthorModel struct {
	StoryID string `gorm:"size:36;primaryKey"`
	UserID  string `gorm:"size:36;primaryKey"`
}

func (StoryCoAuthorModel) TableName() string {
	return "story_co_authors"
}

type StoryTagModel struct {
	StoryID string `gorm:"size:36;primaryKey"`
	TagID   string `gorm:"size:36;primaryKey"`
}

func (StoryTagModel) TableName() string {
	return "story_tags"
}

type StoryLocationModel struct {
	StoryID    string `gorm:"size:36;primaryKey"`
	LocationID string `gorm:"size:36;primaryKey"`
}

func (StoryLocationModel) TableName() string {
	return "story_locations"
}
