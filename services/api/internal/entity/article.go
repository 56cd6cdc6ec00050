package entity

import "time"

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "DRAFT"
	ArticleStatusPublished ArticleStatus = "PUBLISHED"
)

func (s ArticleStatus) Valid() bool {
	return s == ArticleStatusDraft || s == ArticleStatusPublished
}

type Article struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Summary     string        `json:"summary,omitempty"`
	Content     string        `json:"content"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Status      ArticleStatus `json:"status"`
	CategoryID  string        `json:"categoryId"`
	AuthorID    string        `json:"authorId"`
	Views       int           `json:"views"`
	Author      *UserSummary  `json:"author,omitempty"`
	Category    *Category     `json:"category,omitempty"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ArticleFilter struct {
	CategoryID string
	AuthorID   string
	Status     ArticleStatus
	Search     string
}
