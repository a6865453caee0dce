package education

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/education"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type DeleteEducationUseCase struct {
	educationRepo education.Repository
	profileRepo   profile.Repository
	viewCache     service.ViewCache
	logger        logger.Logger
}

func NewDeleteEducationUseCase(eduRepo education.Repository, pRepo profile.Repository, cache service.ViewCache, log logger.Logger) *DeleteEducationUseCase {
	return &DeleteEducationUseCase{
		educationRepo: eduRepo,
		profileRepo:   pRepo,
		viewCache:     cache,
		logger:        log,
	}
}

type DeleteEducationInput struct {
	UserID      uuid.UUID
	EducationID uuid.UUID
}

func (uc *DeleteEducationUseCase) Execute(ctx context.Context, input DeleteEducationInput) error {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return err
	}

	e, err := uc.educationRepo.FindByID(ctx, input.EducationID)
	if err != nil {
		return err
	}

	if e.ProfileID != p.ID {
		return apperror.NewPermissionDenied("education entry belongs to a different profile")
	}

	if err := uc.educationRepo.Delete(ctx, input.EducationID); err != nil {
		return err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	return nil
}
