package profile

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/education"
	"github.com/studenthub/profile-api/internal/domain/experience"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/internal/domain/project"
	"github.com/studenthub/profile-api/pkg/logger"
)

// ProfileView is the full per-user aggregate the profile page renders.
type ProfileView struct {
	Profile    *profile.Profile         `json:"profile"`
	Skills     []profile.Skill          `json:"skills"`
	Education  []*education.Education   `json:"education"`
	Experience []*experience.Experience `json:"experience"`
	Projects   []*project.Project       `json:"projects"`
}

type GetProfileUseCase struct {
	profileRepo    profile.Repository
	educationRepo  education.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	viewCache      service.ViewCache
	logger         logger.Logger
}

func NewGetProfileUseCase(
	pRepo profile.Repository,
	eduRepo education.Repository,
	expRepo experience.Repository,
	projRepo project.Repository,
	cache service.ViewCache,
	log logger.Logger,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo:    pRepo,
		educationRepo:  eduRepo,
		experienceRepo: expRepo,
		projectRepo:    projRepo,
		viewCache:      cache,
		logger:         log,
	}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	View *ProfileView
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if payload, err := uc.viewCache.Get(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to read profile view cache", zap.String("user_id", input.UserID.String()), zap.Error(err))
	} else if payload != nil {
		view := &ProfileView{}
		// A payload that decodes but carries no profile (corruption, or a
		// stale shape from an older writer) is treated as a miss.
		if err := json.Unmarshal(payload, view); err == nil && view.Profile != nil {
			return &GetProfileOutput{View: view}, nil
		}
		uc.logger.Warn("Discarding malformed cached profile view", zap.String("user_id", input.UserID.String()))
	}

	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	skills, err := uc.profileRepo.ListSkills(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	educationEntries, err := uc.educationRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	experienceEntries, err := uc.experienceRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Profile:    p,
		Skills:     skills,
		Education:  educationEntries,
		Experience: experienceEntries,
		Projects:   projects,
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := uc.viewCache.Set(ctx, input.UserID, payload); err != nil {
			uc.logger.Warn("Failed to write profile view cache", zap.String("user_id", input.UserID.String()), zap.Error(err))
		}
	}

	return &GetProfileOutput{View: view}, nil
}
