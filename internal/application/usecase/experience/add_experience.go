package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/experience"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

const dateLayout = "2006-01-02"

type AddExperienceUseCase struct {
	experienceRepo experience.Repository
	profileRepo    profile.Repository
	viewCache      service.ViewCache
	logger         logger.Logger
}

func NewAddExperienceUseCase(expRepo experience.Repository, pRepo profile.Repository, cache service.ViewCache, log logger.Logger) *AddExperienceUseCase {
	return &AddExperienceUseCase{
		experienceRepo: expRepo,
		profileRepo:    pRepo,
		viewCache:      cache,
		logger:         log,
	}
}

type AddExperienceInput struct {
	UserID      uuid.UUID
	Company     string
	Position    string
	Location    string
	StartDate   string
	EndDate     string
	Description string
}

type AddExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *AddExperienceUseCase) Execute(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, apperror.NewInvalidInput("startDate must be a valid YYYY-MM-DD date", err)
	}
	var endDate *time.Time
	if input.EndDate != "" {
		parsed, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return nil, apperror.NewInvalidInput("endDate must be a valid YYYY-MM-DD date or empty", err)
		}
		endDate = &parsed
	}

	e := &experience.Experience{
		ID:          uuid.New(),
		ProfileID:   p.ID,
		Company:     input.Company,
		Position:    input.Position,
		Location:    input.Location,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.experienceRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	return &AddExperienceOutput{Experience: e}, nil
}
