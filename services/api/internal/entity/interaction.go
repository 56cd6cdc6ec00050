package entity

import "time"

type Comment struct {
	ID        string       `json:"id"`
	StoryID   string       `json:"storyId"`
	UserID    string       `json:"userId"`
	Content   string       `json:"content"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type EngagementType string

const (
	EngagementReaction EngagementType = "REACTION"
	EngagementShare    EngagementType = "SHARE"
)
