package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/adapters/event"
	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

// splitCommaList turns a single delimited form value into tokens: split on
// comma, trim whitespace, drop empty tokens. Duplicates are kept.
func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	viewCache   service.ViewCache
	events      service.EventPublisher
	logger      logger.Logger
}

func NewCreateProfileUseCase(repo profile.Repository, cache service.ViewCache, events service.EventPublisher, log logger.Logger) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: repo,
		viewCache:   cache,
		events:      events,
		logger:      log,
	}
}

type CreateProfileInput struct {
	UserID       uuid.UUID
	Email        string
	Name         string
	Profession   string
	Batch        string
	About        string
	ProfileImage string
	Phone        string
	LinkedIn     string
	Skills       string
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidInput("name is required", nil)
	}

	now := time.Now().UTC()
	p := &profile.Profile{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Name:         input.Name,
		Profession:   input.Profession,
		Batch:        input.Batch,
		About:        input.About,
		ProfileImage: input.ProfileImage,
		Phone:        input.Phone,
		Email:        input.Email,
		LinkedIn:     input.LinkedIn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if skills := splitCommaList(input.Skills); len(skills) > 0 {
		if err := uc.profileRepo.InsertSkills(ctx, p.ID, skills); err != nil {
			return nil, err
		}
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeCreated,
			UserID:     input.UserID,
			ProfileID:  p.ID,
			OccurredAt: now,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish profile created event", zap.String("profile_id", p.ID.String()), zap.Error(err))
		}
	}()

	return &CreateProfileOutput{Profile: p}, nil
}
