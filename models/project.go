package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Difficulty levels accepted on a project listing.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Defaults applied when the optional fields are absent at creation.
const (
	DefaultCommitment    = "10-20"
	DefaultCommunication = "discord"
)

// SeedCategories is the baseline category set offered before any
// projects exist. The live set is this list unioned with whatever
// categories are already in use; categories are never a closed enum.
var SeedCategories = []string{
	"web", "mobile", "ai/ml", "blockchain",
	"game-dev", "cybersecurity", "data-science", "other",
}

// Project represents a collaboration listing
type Project struct {
	ID             uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title          string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description    string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Requirements   string                      `json:"requirements" db:"requirements" gorm:"type:text;not null"`
	TechStack      datatypes.JSONSlice[string] `json:"techStack" db:"tech_stack" gorm:"type:jsonb;not null"`
	TeamSize       int                         `json:"teamSize" db:"team_size" gorm:"type:integer;not null"`
	Timeframe      string                      `json:"timeframe" db:"timeframe" gorm:"type:text;not null"`
	Difficulty     string                      `json:"difficulty" db:"difficulty" gorm:"type:text;not null"`
	Category       string                      `json:"category" db:"category" gorm:"type:text;not null;index:idx_project_category"`
	Commitment     string                      `json:"commitment" db:"commitment" gorm:"type:text;not null"`
	Communication  string                      `json:"communication" db:"communication" gorm:"type:text;not null"`
	GithubRequired bool                        `json:"githubRequired" db:"github_required" gorm:"type:boolean;not null;default:false"`
	CreatorID      uuid.UUID                   `json:"creatorId" db:"creator_id" gorm:"type:uuid;not null;index:idx_project_creator_id"`
	CreatedAt      time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Creator *User `json:"-" gorm:"foreignKey:CreatorID;references:ID"`
}

// ProjectInterest records that a user wants to join a project. A user
// may express interest in a given project at most once; the composite
// unique index is the arbiter under concurrent requests.
type ProjectInterest struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_interest_user_project"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_interest_user_project"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectMessage is a one-off contact message from an interested user to
// a project's creator. Immutable once written; no threading.
type ProjectMessage struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	ProjectID   uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null"`
	SenderID    uuid.UUID `json:"senderId" db:"sender_id" gorm:"type:uuid;not null"`
	RecipientID uuid.UUID `json:"recipientId" db:"recipient_id" gorm:"type:uuid;not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Project   *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Sender    *User    `json:"-" gorm:"foreignKey:SenderID;references:ID"`
	Recipient *User    `json:"-" gorm:"foreignKey:RecipientID;references:ID"`
}
