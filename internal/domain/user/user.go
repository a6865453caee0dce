package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the internal record behind an identity-provider subject. It is
// created lazily on first authenticated request and its name/email are
// refreshed from the session on every call.
type User struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// UpsertBySubject creates the user on first sight, otherwise refreshes
	// name and email (last-write-wins), and returns the stored row.
	UpsertBySubject(ctx context.Context, subject string, name *string, email string) (*User, error)
}
