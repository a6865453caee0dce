package education

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Education belongs to exactly one profile. A nil EndDate means the entry
// is ongoing and renders as "Present".
type Education struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByID loads the row regardless of owner; the caller verifies
	// ownership against its own profile id.
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*Education, error)
}
