package entity

import (
	"encoding/json"
	"time"
)

type StoryStatus string

const (
	StoryStatusDraft            StoryStatus = "DRAFT"
	StoryStatusSubmitted        StoryStatus = "SUBMITTED"
	StoryStatusChangesRequested StoryStatus = "CHANGES_REQUESTED"
	StoryStatusApproved         StoryStatus = "APPROVED"
	StoryStatusPublished        StoryStatus = "PUBLISHED"
	StoryStatusArchived         StoryStatus = "ARCHIVED"
)

var StoryStatuses = []StoryStatus{
	StoryStatusDraft,
	StoryStatusSubmitted,
	StoryStatusChangesRequested,
	StoryStatusApproved,
	StoryStatusPublished,
	StoryStatusArchived,
}

func (s StoryStatus) Valid() bool {
	for _, status := range StoryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Language string

const (
	LanguageBn   Language = "BN"
	LanguageEn   Language = "EN"
	LanguageBoth Language = "BOTH"
)

func (l Language) Valid() bool {
	return l == LanguageBn || l == LanguageEn || l == LanguageBoth
}

type ContentType string

const (
	ContentTypeStory     ContentType = "STORY"
	ContentTypeArticle   ContentType = "ARTICLE"
	ContentTypeEssay     ContentType = "ESSAY"
	ContentTypePoem      ContentType = "POEM"
	ContentTypeInterview ContentType = "INTERVIEW"
	ContentTypeReport    ContentType = "REPORT"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeStory, ContentTypeArticle, ContentTypeEssay, ContentTypePoem, ContentTypeInterview, ContentTypeReport:
		return true
	}
	return false
}

type Copyright string

const (
	CopyrightAllRightsReserved Copyright = "ALL_RIGHTS_RESERVED"
	CopyrightCCBY              Copyright = "CC_BY"
	CopyrightCCBYSA            Copyright = "CC_BY_SA"
	CopyrightCCBYNC            Copyright = "CC_BY_NC"
	CopyrightPublicDomain      Copyright = "PUBLIC_DOMAIN"
)

func (c Copyright) Valid() bool {
	switch c {
	case CopyrightAllRightsReserved, CopyrightCCBY, CopyrightCCBYSA, CopyrightCCBYNC, CopyrightPublicDomain:
		return true
	}
	return false
}

type Source struct {
	ID           string     `json:"id,omitempty"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Author       string     `json:"author,omitempty"`
	URL          string     `json:"url,omitempty"`
	DateAccessed *time.Time `json:"dateAccessed,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type StoryMedia struct {
	Media *Media `json:"media"`
	Order int    `json:"order"`
}

type Story struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	TitleBn    string          `json:"titleBn,omitempty"`
	TitleEn    string          `json:"titleEn,omitempty"`
	Abstract   string          `json:"abstract"`
	AbstractBn string          `json:"abstractBn,omitempty"`
	AbstractEn string          `json:"abstractEn,omitempty"`
	Body       json.RawMessage `json:"body"`
	BodyBn     json.RawMessage `json:"bodyBn,omitempty"`
	BodyEn     json.RawMessage `json:"bodyEn,omitempty"`
	Slug       string          `json:"slug"`

	Thumbnail    string      `json:"thumbnail,omitempty"`
	ThumbnailAlt string      `json:"thumbnailAlt,omitempty"`
	Language     Language    `json:"language"`
	ContentType  ContentType `json:"contentType"`
	Status       StoryStatus `json:"status"`

	CategoryID  string  `json:"categoryId"`
	AuthorID    string  `json:"authorId"`
	ReviewerID  *string `json:"reviewerId,omitempty"`
	ReviewNotes string  `json:"reviewNotes,omitempty"`

	Copyright     Copyright `json:"copyright"`
	AllowComments bool      `json:"allowComments"`
	AllowSharing  bool      `json:"allowSharing"`
	IsPremium     bool      `json:"isPremium"`

	WordCount      int `json:"wordCount"`
	ReadingTime    int `json:"readingTime"`
	ViewCount      int `json:"viewCount"`
	UniqueVisitors int `json:"uniqueVisitors"`
	ReactionCount  int `json:"reactionCount"`
	CommentCount   int `json:"commentCount"`
	ShareCount     int `json:"shareCount"`
	BookmarkCount  int `json:"bookmarkCount"`

	Author    *UserSummary  `json:"author,omitempty"`
	Category  *Category     `json:"category,omitempty"`
	CoAuthors []UserSummary `json:"coAuthors"`
	Tags      []Tag         `json:"tags"`
	Locations []Location    `json:"locations"`
	Sources   []Source      `json:"sources,omitempty"`
	Media     []StoryMedia  `json:"media,omitempty"`

	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

func (s *Story) IsAuthor(userID string) bool {
	return userID != "" && s.AuthorID == userID
}

func (s *Story) IsCoAuthor(userID string) bool {
	if userID == "" {
		return false
	}
	for _, co := range s.CoAuthors {
		if co.ID == userID {
			return true
		}
	}
	return false
}

func (s *Story) IsReviewer(userID string) bool {
	return userID != "" && s.ReviewerID != nil && *s.ReviewerID == userID
}

// CanEdit covers the primary author and co-authors.
func (s *Story) CanEdit(userID string) bool {
	return s.IsAuthor(userID) || s.IsCoAuthor(userID)
}

// CanView reports whether userID may read the story. Anonymous callers pass "".
func (s *Story) CanView(userID string) bool {
	if s.Status == StoryStatusPublished {
		return true
	}
	return s.CanEdit(userID) || s.IsReviewer(userID)
}

type StoryFilter struct {
	AuthorID    string
	MemberID    string
	Statuses    []StoryStatus
	CategoryID  string
	Language    Language
	ContentType ContentType
	Search      string
	LocationID  string
}

// StoryStats is the engagement summary shown to a story's authors.
type StoryStats struct {
	Views          int `json:"views"`
	UniqueVisitors int `json:"uniqueVisitors"`
	Reactions      int `json:"reactions"`
	Comments       int `json:"comments"`
	Shares         int `json:"shares"`
	Bookmarks      int `json:"bookmarks"`
	WordCount      int `json:"wordCount"`
	ReadingTime    int `json:"readingTime"`
}
