package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studenthub/profile-api/internal/domain/user"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

func (r *postgresUserRepo) UpsertBySubject(ctx context.Context, subject string, name *string, email string) (*user.User, error) {
	query := `
		INSERT INTO users (subject, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (subject) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING id, subject, name, email, created_at, updated_at
	`
	u := &user.User{}
	err := r.db.QueryRow(ctx, query, subject, name, email).Scan(
		&u.ID,
		&u.Subject,
		&u.Name,
		&u.Email,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to upsert user", err)
	}
	return u, nil
}
