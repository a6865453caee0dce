package project

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID      `json:"id"`
	ProfileID   uuid.UUID      `json:"profile_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	GithubLink  *string        `json:"github_link"`
	LiveLink    *string        `json:"live_link"`
	Images      []ProjectImage `json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ProjectImage struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	URL       string    `json:"url"`
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	// InsertImages bulk-creates one image row per URL. Images are only
	// added at project-creation time.
	InsertImages(ctx context.Context, projectID uuid.UUID, urls []string) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*Project, error)
}
