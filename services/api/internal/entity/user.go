package entity

import "time"

type Role string

const (
	RoleReader Role = "READER"
	RoleAuthor Role = "AUTHOR"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"
)

// AuthorRoles are the roles listed in author discovery.
var AuthorRoles = []Role{RoleAuthor, RoleEditor, RoleAdmin}

func (r Role) IsAuthor() bool {
	return r == RoleAuthor || r == RoleEditor || r == RoleAdmin
}

func (r Role) CanReview() bool {
	return r == RoleEditor || r == RoleAdmin
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	NameBn    string     `json:"nameBn,omitempty"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	Bio       string     `json:"bio,omitempty"`
	BioBn     string     `json:"bioBn,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UserSummary is the embedded form of a user on content payloads.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
