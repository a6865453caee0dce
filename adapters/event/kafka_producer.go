package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/studenthub/profile-api/internal/config"
)

const (
	TopicProfileEvents = "profile.events"
	TopicMediaEvents   = "media.events"
)

const (
	ProfileEventTypeCreated = "profile.created"
	ProfileEventTypeUpdated = "profile.updated"
	ProfileEventTypeDeleted = "profile.deleted"

	MediaEventTypeReplaced = "image.replaced"
	MediaEventTypeOrphaned = "image.orphaned"
)

type ProfileEventPayload struct {
	EventType  string    `json:"event_type"`
	UserID     uuid.UUID `json:"user_id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MediaEventPayload tells the cleanup worker which media-host asset is no
// longer referenced by any row. PublicID may be empty when the producer
// only knows the delivery URL; the worker derives the public id then.
type MediaEventPayload struct {
	EventType  string    `json:"event_type"`
	PublicID   string    `json:"public_id,omitempty"`
	URL        string    `json:"url,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	MediaEventsWriter   *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	mediaWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicMediaEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
		MediaEventsWriter:   mediaWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal profile event: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishMediaEvent(ctx context.Context, payload MediaEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal media event: %w", err)
	}
	key := payload.PublicID
	if key == "" {
		key = payload.URL
	}
	return c.MediaEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.MediaEventsWriter != nil {
		c.MediaEventsWriter.Close()
	}
}
