package entity

import "time"

// AuthorProfile is a user as shown in author discovery.
type AuthorProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NameBn         string    `json:"nameBn,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	BioBn          string    `json:"bioBn,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	StoriesCount   int64     `json:"storiesCount"`
	FollowersCount int64     `json:"followersCount"`
	FollowingCount *int64    `json:"followingCount,omitempty"`
	IsFollowing    bool      `json:"isFollowing"`
}

// FollowedAuthor is an entry of the caller's following list.
type FollowedAuthor struct {
	AuthorProfile
	FollowedAt time.Time `json:"followedAt"`
}

type AuthorFilter struct {
	Role   Role
	Search string
}
