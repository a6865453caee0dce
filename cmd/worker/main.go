package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/studenthub/profile-api/adapters/event"
	"github.com/studenthub/profile-api/adapters/media_storage"
	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/internal/config"
	"github.com/studenthub/profile-api/pkg/logger"
)

// The worker consumes media.events and deletes replaced or orphaned assets
// from the media host. Messages are fetched without auto-commit; the offset
// is committed only after a successful delete, so a failed delete is
// redelivered. Destroy is idempotent, so at-least-once delivery is fine.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting StudentHub media cleanup worker...")

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	mediaConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicMediaEvents,
		GroupID:  "media-cleanup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer mediaConsumer.Close()

	appLogger.Info("Worker listening on topic '" + event.TopicMediaEvents + "'...")

	ctx := context.Background()
	for {
		msg, err := mediaConsumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to fetch message from Kafka: %v", err)
			continue
		}

		if handleMediaMessage(ctx, uploader, msg.Value) {
			commitMessage(mediaConsumer, msg)
		}
	}
}

// handleMediaMessage reports whether the message's offset may be committed.
// Malformed or unusable payloads are committed and skipped; a failed delete
// is not, so the message comes back after a restart or rebalance.
func handleMediaMessage(ctx context.Context, uploader service.Uploader, value []byte) bool {
	var payload event.MediaEventPayload
	if err := json.Unmarshal(value, &payload); err != nil {
		log.Printf("ERROR: Failed to unmarshal media event: %v. Skipping.", err)
		return true
	}

	publicID := payload.PublicID
	if publicID == "" {
		publicID = media_storage.PublicIDFromURL(payload.URL)
	}
	if publicID == "" {
		log.Printf("WARN: media event without usable public id (url=%q). Skipping.", payload.URL)
		return true
	}

	log.Printf("Processing event: [%s] for public id %s", payload.EventType, publicID)

	if err := uploader.Delete(ctx, publicID); err != nil {
		log.Printf("ERROR: Failed to delete asset %s: %v", publicID, err)
		return false
	}
	return true
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
