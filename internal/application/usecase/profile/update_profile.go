package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/adapters/event"
	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/logger"
)

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	viewCache   service.ViewCache
	events      service.EventPublisher
	logger      logger.Logger
}

func NewUpdateProfileUseCase(repo profile.Repository, cache service.ViewCache, events service.EventPublisher, log logger.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: repo,
		viewCache:   cache,
		events:      events,
		logger:      log,
	}
}

type UpdateProfileInput struct {
	UserID       uuid.UUID
	Name         string
	Profession   string
	Batch        string
	About        string
	ProfileImage string
	Phone        string
	LinkedIn     string
	Skills       string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	oldImage := p.ProfileImage

	p.Name = input.Name
	p.Profession = input.Profession
	p.Batch = input.Batch
	p.About = input.About
	p.ProfileImage = input.ProfileImage
	p.Phone = input.Phone
	p.LinkedIn = input.LinkedIn
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	// Full replace, not diff/merge: every existing skill row is dropped and
	// the submitted list is inserted as-is, duplicates included.
	if err := uc.profileRepo.ReplaceSkills(ctx, p.ID, splitCommaList(input.Skills)); err != nil {
		return nil, err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	now := p.UpdatedAt
	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeUpdated,
			UserID:     input.UserID,
			ProfileID:  p.ID,
			OccurredAt: now,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish profile updated event", zap.String("profile_id", p.ID.String()), zap.Error(err))
		}
	}()

	if oldImage != "" && oldImage != input.ProfileImage {
		go func() {
			err := uc.events.PublishMediaEvent(context.Background(), event.MediaEventPayload{
				EventType:  event.MediaEventTypeReplaced,
				URL:        oldImage,
				OccurredAt: now,
			})
			if err != nil {
				uc.logger.Warn("Failed to publish replaced image event", zap.String("url", oldImage), zap.Error(err))
			}
		}()
	}

	return &UpdateProfileOutput{Profile: p}, nil
}
