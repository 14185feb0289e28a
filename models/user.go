package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileLink is a single external link on a user profile.
type ProfileLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// User represents a registered account
type User struct {
	ID             uuid.UUID                            `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name           string                               `json:"name" db:"name" gorm:"type:text;not null"`
	Email          string                               `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash   string                               `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Image          *string                              `json:"image,omitempty" db:"image" gorm:"type:text"`
	GithubUsername *string                              `json:"githubUsername,omitempty" db:"github_username" gorm:"type:text"`
	Bio            *string                              `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	Links          datatypes.JSONSlice[ProfileLink]     `json:"links,omitempty" db:"links" gorm:"type:jsonb"`
	CreatedAt      time.Time                            `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time                            `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// PublicUser is the subset of User that is safe to embed in listing
// responses. Email is only included on single-project fetches.
type PublicUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Image          *string   `json:"image,omitempty"`
	GithubUsername *string   `json:"githubUsername,omitempty"`
}

// Public returns the listing-safe subset of the user: id, display name
// and avatar only.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Image: u.Image,
	}
}

// PublicWithContact returns the profile shown on a single project page,
// which additionally carries email and GitHub handle.
func (u User) PublicWithContact() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Image:          u.Image,
		GithubUsername: u.GithubUsername,
	}
}
