package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/internal/domain/project"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type AddProjectUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	viewCache   service.ViewCache
	logger      logger.Logger
}

func NewAddProjectUseCase(projRepo project.Repository, pRepo profile.Repository, cache service.ViewCache, log logger.Logger) *AddProjectUseCase {
	return &AddProjectUseCase{
		projectRepo: projRepo,
		profileRepo: pRepo,
		viewCache:   cache,
		logger:      log,
	}
}

type AddProjectInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	GithubLink  *string
	LiveLink    *string
	ImageURLs   string
}

type AddProjectOutput struct {
	Project *project.Project
}

func (uc *AddProjectUseCase) Execute(ctx context.Context, input AddProjectInput) (*AddProjectOutput, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInput("name is required", nil)
	}

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	proj := &project.Project{
		ID:          uuid.New(),
		ProfileID:   p.ID,
		Name:        input.Name,
		Description: input.Description,
		GithubLink:  input.GithubLink,
		LiveLink:    input.LiveLink,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.projectRepo.Save(ctx, proj); err != nil {
		return nil, err
	}

	// Image rows exist only for surviving tokens: split on comma, trim,
	// drop empties.
	urls := make([]string, 0)
	for _, part := range strings.Split(input.ImageURLs, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) > 0 {
		if err := uc.projectRepo.InsertImages(ctx, proj.ID, urls); err != nil {
			return nil, err
		}
		images := make([]project.ProjectImage, len(urls))
		for i, url := range urls {
			images[i] = project.ProjectImage{ProjectID: proj.ID, URL: url}
		}
		proj.Images = images
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	return &AddProjectOutput{Project: proj}, nil
}
