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

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	viewCache   service.ViewCache
	events      service.EventPublisher
	logger      logger.Logger
}

func NewDeleteProfileUseCase(repo profile.Repository, cache service.ViewCache, events service.EventPublisher, log logger.Logger) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: repo,
		viewCache:   cache,
		events:      events,
		logger:      log,
	}
}

type DeleteProfileInput struct {
	UserID uuid.UUID
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, input DeleteProfileInput) error {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return err
	}

	// Child rows (skills, education, experience, projects, images) go with
	// the profile via FK cascade.
	if err := uc.profileRepo.DeleteByUserID(ctx, input.UserID); err != nil {
		return err
	}

	if err := uc.viewCache.Invalidate(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to invalidate profile view", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	now := time.Now().UTC()
	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeDeleted,
			UserID:     input.UserID,
			ProfileID:  p.ID,
			OccurredAt: now,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish profile deleted event", zap.String("profile_id", p.ID.String()), zap.Error(err))
		}
	}()

	if p.ProfileImage != "" {
		go func() {
			err := uc.events.PublishMediaEvent(context.Background(), event.MediaEventPayload{
				EventType:  event.MediaEventTypeOrphaned,
				URL:        p.ProfileImage,
				OccurredAt: now,
			})
			if err != nil {
				uc.logger.Warn("Failed to publish orphaned image event", zap.String("url", p.ProfileImage), zap.Error(err))
			}
		}()
	}

	return nil
}
