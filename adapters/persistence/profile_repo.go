package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studenthub/profile-api/internal/domain/profile"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `id, user_id, name, profession, batch, about, profile_image, phone, email, linkedin, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Profession,
		&p.Batch,
		&p.About,
		&p.ProfileImage,
		&p.Phone,
		&p.Email,
		&p.LinkedIn,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, name, profession, batch, about, profile_image, phone, email, linkedin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Profession, p.Batch, p.About,
		p.ProfileImage, p.Phone, p.Email, p.LinkedIn,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "user_id", p.UserID.String())
		}
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("profile", userID.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2, profession = $3, batch = $4, about = $5, profile_image = $6,
			phone = $7, linkedin = $8, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Profession, p.Batch, p.About,
		p.ProfileImage, p.Phone, p.LinkedIn,
	)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", userID.String())
	}
	return nil
}

// ReplaceSkills runs delete-all then bulk insert inside one transaction, so
// a failure between the two statements cannot leave the profile with zero
// skills.
func (r *postgresProfileRepo) ReplaceSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return apperror.NewInternal("failed to begin skill replace transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE profile_id = $1`, profileID); err != nil {
		return apperror.NewInternal("failed to delete old skills", err)
	}

	if len(names) > 0 {
		rowsToInsert := make([][]interface{}, len(names))
		for i, name := range names {
			rowsToInsert[i] = []interface{}{uuid.New(), profileID, name}
		}
		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"skills"},
			[]string{"id", "profile_id", "name"},
			pgx.CopyFromRows(rowsToInsert),
		)
		if err != nil {
			return apperror.NewInternal("failed to insert new skills", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit skill replace", err)
	}
	return nil
}

func (r *postgresProfileRepo) InsertSkills(ctx context.Context, profileID uuid.UUID, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rowsToInsert := make([][]interface{}, len(names))
	for i, name := range names {
		rowsToInsert[i] = []interface{}{uuid.New(), profileID, name}
	}
	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"skills"},
		[]string{"id", "profile_id", "name"},
		pgx.CopyFromRows(rowsToInsert),
	)
	if err != nil {
		return apperror.NewInternal("failed to insert skills", err)
	}
	return nil
}

func (r *postgresProfileRepo) ListSkills(ctx context.Context, profileID uuid.UUID) ([]profile.Skill, error) {
	query := `SELECT id, profile_id, name, proficiency FROM skills WHERE profile_id = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	skills := make([]profile.Skill, 0)
	for rows.Next() {
		var s profile.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency); err != nil {
			return nil, apperror.NewInternal("failed to scan skill", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skills", err)
	}
	return skills, nil
}
