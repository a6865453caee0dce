package media

import (
	"context"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type DeleteImageUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewDeleteImageUseCase(uploader service.Uploader, log logger.Logger) *DeleteImageUseCase {
	return &DeleteImageUseCase{
		uploader: uploader,
		logger:   log,
	}
}

type DeleteImageInput struct {
	PublicID string
}

func (uc *DeleteImageUseCase) Execute(ctx context.Context, input DeleteImageInput) error {
	if input.PublicID == "" {
		return apperror.NewInvalidInput("publicId is required", nil)
	}
	if err := uc.uploader.Delete(ctx, input.PublicID); err != nil {
		return apperror.NewInternal("failed to delete image", err)
	}
	return nil
}
