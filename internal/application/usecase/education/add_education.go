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

const dateLayout = "2006-01-02"

// parseDates parses the submitted date fields. Start is required; an empty
// end date means the entry is ongoing and maps to nil, not an error.
func parseDates(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, nil, apperror.NewInvalidInput("startDate must be a valid YYYY-MM-DD date", err)
	}
	if end == "" {
		return startDate, nil, nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, nil, apperror.NewInvalidInput("endDate must be a valid YYYY-MM-DD date or empty", err)
	}
	return startDate, &endDate, nil
}

type AddEducationUseCase struct {
	educationRepo education.Repository
	profileRepo   profile.Repository
	viewCache     service.ViewCache
	logger        logger.Logger
}

func NewAddEducationUseCase(eduRepo education.Repository, pRepo profile.Repository, cache service.ViewCache, log logger.Logger) *AddEducationUseCase {
	return &AddEducationUseCase{
		educationRepo: eduRepo,
		profileRepo:   pRepo,
		viewCache:     cache,
		logger:        log,
	}
}

type AddEducationInput struct {
	UserID      uuid.UUID
	Institution string
	Degree      string
	Field       string
	StartDate   string
	EndDate     string
	Description string
}

type AddEducationOutput struct {
	Education *education.Education
}

func (uc *AddEducationUseCase) Execute(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseDates(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &education.Education{
		ID:          uuid.New(),
		ProfileID:   p.ID,
		Institution: input.Institution,
		Degree:      input.Degree,
		Field:       input.Field,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.educationRepo.Save(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	return &AddEducationOutput{Education: e}, nil
}
