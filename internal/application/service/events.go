package service

import (
	"context"

	"github.com/studenthub/profile-api/adapters/event"
)

// EventPublisher is satisfied by the Kafka producer client. Publishing is
// best-effort from the caller's point of view; failures are logged, never
// surfaced to the user.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
	PublishMediaEvent(ctx context.Context, payload event.MediaEventPayload) error
}
