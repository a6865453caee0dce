package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the single per-user aggregate root. Email is a denormalized
// copy of the owning user's email at creation time.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Profession   string    `json:"profession"`
	Batch        string    `json:"batch"`
	About        string    `json:"about"`
	ProfileImage string    `json:"profile_image"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	LinkedIn     string    `json:"linkedin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Skill struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Name        string    `json:"name"`
	Proficiency *string   `json:"proficiency"`
}

type Repository interface {
	// Create inserts a new profile. A user may own at most one profile;
	// a second insert for the same user fails with a conflict.
	Create(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// ReplaceSkills deletes every skill row of the profile and inserts one
	// row per name, in a single transaction.
	ReplaceSkills(ctx context.Context, profileID uuid.UUID, names []string) error
	InsertSkills(ctx context.Context, profileID uuid.UUID, names []string) error
	ListSkills(ctx context.Context, profileID uuid.UUID) ([]Skill, error)
}
