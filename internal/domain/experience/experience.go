package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*Experience, error)
}
