package education

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/education"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type UpdateEducationUseCase struct {
	educationRepo education.Repository
	profileRepo   profile.Repository
	viewCache     service.ViewCache
	logger        logger.Logger
}

func NewUpdateEducationUseCase(eduRepo education.Repository, pRepo profile.Repository, cache service.ViewCache, log logger.Logger) *UpdateEducationUseCase {
	return &UpdateEducationUseCase{
		educationRepo: eduRepo,
		profileRepo:   pRepo,
		viewCache:     cache,
		logger:        log,
	}
}

type UpdateEducationInput struct {
	UserID      uuid.UUID
	EducationID uuid.UUID
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
	Description string
}

type UpdateEducationOutput struct {
	Education *education.Education
}

func (uc *UpdateEducationUseCase) Execute(ctx context.Context, input UpdateEducationInput) (*UpdateEducationOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	e, err := uc.educationRepo.FindByID(ctx, input.EducationID)
	if err != nil {
		return nil, err
	}

	// The id comes from the client, so ownership is re-verified on every
	// call against the caller's own profile.
	if e.ProfileID != p.ID {
		return nil, apperror.NewPermissionDenied("education entry belongs to a different profile")
	}

	startDate, endDate, err := parseDates(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	e.Institution = input.Institution
	e.Degree = input.Degree
	e.Field = input.Field
	e.StartDate = startDate
	e.EndDate = endDate
	e.Description = input.Description
	e.UpdatedAt = time.Now().UTC()

	if err := uc.educationRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	return &UpdateEducationOutput{Education: e}, nil
}
