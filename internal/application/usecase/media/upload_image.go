package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/studenthub/profile-api/internal/application/service"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type UploadImageUseCase struct {
	uploader      service.Uploader
	defaultPreset string
	logger        logger.Logger
}

func NewUploadImageUseCase(uploader service.Uploader, defaultPreset string, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{
		uploader:      uploader,
		defaultPreset: defaultPreset,
		logger:        log,
	}
}

type UploadImageInput struct {
	UserID       uuid.UUID
	File         io.Reader
	UploadPreset string
}

type UploadImageOutput struct {
	SecureURL string
	PublicID  string
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	preset := input.UploadPreset
	if preset == "" {
		preset = uc.defaultPreset
	}

	folder := fmt.Sprintf("users/%s", input.UserID.String())
	result, err := uc.uploader.Upload(ctx, input.File, folder, preset)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload image", err)
	}

	return &UploadImageOutput{
		SecureURL: result.SecureURL,
		PublicID:  result.PublicID,
	}, nil
}
