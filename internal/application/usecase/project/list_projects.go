package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/internal/domain/project"
	"github.com/studenthub/profile-api/pkg/logger"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewListProjectsUseCase(projRepo project.Repository, pRepo profile.Repository, log logger.Logger) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projRepo,
		profileRepo: pRepo,
		logger:      log,
	}
}

type ListProjectsInput struct {
	UserID uuid.UUID
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
