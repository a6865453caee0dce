package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studenthub/profile-api/internal/domain/project"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, profile_id, name, description, github_link, live_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.ProfileID, p.Name, p.Description,
		p.GithubLink, p.LiveLink, p.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) InsertImages(ctx context.Context, projectID uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	rowsToInsert := make([][]interface{}, len(urls))
	for i, url := range urls {
		rowsToInsert[i] = []interface{}{uuid.New(), projectID, url}
	}
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"project_images"},
		[]string{"id", "project_id", "url"},
		pgx.CopyFromRows(rowsToInsert),
	)
	if err != nil {
		return apperror.NewInternal("failed to insert project images", err)
	}
	return nil
}

func (r *postgresProjectRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*project.Project, error) {
	builder := psqlProject.Select("id, profile_id, name, description, github_link, live_link, created_at").
		From("projects").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by profile", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p := &project.Project{}
		err := rows.Scan(
			&p.ID, &p.ProfileID, &p.Name, &p.Description,
			&p.GithubLink, &p.LiveLink, &p.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}

	for _, p := range projects {
		images, err := r.listImages(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Images = images
	}
	return projects, nil
}

func (r *postgresProjectRepo) listImages(ctx context.Context, projectID uuid.UUID) ([]project.ProjectImage, error) {
	query := `SELECT id, project_id, url FROM project_images WHERE project_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query project images", err)
	}
	defer rows.Close()

	images := make([]project.ProjectImage, 0)
	for rows.Next() {
		var img project.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.URL); err != nil {
			return nil, apperror.NewInternal("failed to scan project image", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project images", err)
	}
	return images, nil
}
