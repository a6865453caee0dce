package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studenthub/profile-api/internal/domain/experience"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experience (id, profile_id, company, position, location, start_date, end_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.ProfileID, e.Company, e.Position, e.Location,
		e.StartDate, e.EndDate, e.Description, e.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*experience.Experience, error) {
	builder := psqlExperience.Select("id, profile_id, company, position, location, start_date, end_date, description, created_at").
		From("experience").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience by profile", err)
	}
	defer rows.Close()

	entries := make([]*experience.Experience, 0)
	for rows.Next() {
		e := &experience.Experience{}
		err := rows.Scan(
			&e.ID, &e.ProfileID, &e.Company, &e.Position, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan experience row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return entries, nil
}
