package identity

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/studenthub/profile-api/internal/domain/user"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

var tracer = otel.Tracer("identity_usecase")

// ResolveUserUseCase exchanges validated session claims for the internal
// user record, creating it on first sight and refreshing name/email on
// every call.
type ResolveUserUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewResolveUserUseCase(repo user.Repository, log logger.Logger) *ResolveUserUseCase {
	return &ResolveUserUseCase{
		userRepo: repo,
		logger:   log,
	}
}

type ResolveUserInput struct {
	Subject string
	Name    string
	Email   string
}

type ResolveUserOutput struct {
	User *user.User
}

func (uc *ResolveUserUseCase) Execute(ctx context.Context, input ResolveUserInput) (*ResolveUserOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if input.Subject == "" {
		err := apperror.NewUnauthorized("no session subject", nil)
		span.RecordError(err)
		return nil, err
	}

	var name *string
	if input.Name != "" {
		name = &input.Name
	}

	u, err := uc.userRepo.UpsertBySubject(ctx, input.Subject, name, input.Email)
	if err != nil {
		uc.logger.Error("Failed to upsert user from session", err, zap.String("subject", input.Subject))
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &ResolveUserOutput{User: u}, nil
}
