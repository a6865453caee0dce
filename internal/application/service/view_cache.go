package service

import (
	"context"

	"github.com/google/uuid"
)

// ViewCache holds rendered profile views keyed by user id. Get returns
// (nil, nil) on a miss. Mutating actions call Invalidate so the next read
// re-renders from storage.
type ViewCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error)
	Set(ctx context.Context, userID uuid.UUID, payload []byte) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
