package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, profile_id, title, company, location, start_date, end_date, current, description, created_at, updated_at`

func scanExperience(row interface{ Scan(...any) error }, e *domain.Experience) error {
	return row.Scan(
		&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.Location,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO experiences (id, profile_id, title, company, location, start_date, end_date, current, description, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		exp.ID, exp.ProfileID, exp.Title, exp.Company, exp.Location,
		exp.StartDate, exp.EndDate, exp.Current, exp.Description,
		exp.CreatedAt, exp.UpdatedAt,
	)
	return translate(err, "Experience not found")
}

func (r *experienceRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE profile_id = $1 ORDER BY start_date DESC`,
		profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := scanExperience(rows, &e); err != nil {
			return nil, apperror.Internal(err)
		}
		experiences = append(experiences, e)
	}
	return experiences, nil
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	var e domain.Experience
	err := scanExperience(r.db.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id), &e)
	if err != nil {
		return nil, translate(err, "Experience not found")
	}
	return &e, nil
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	result, err := r.db.Exec(ctx,
		`UPDATE experiences SET
			title = $2, company = $3, location = $4, start_date = $5,
			end_date = $6, current = $7, description = $8, updated_at = $9
		 WHERE id = $1`,
		exp.ID, exp.Title, exp.Company, exp.Location, exp.StartDate,
		exp.EndDate, exp.Current, exp.Description, exp.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Experience not found")
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Experience not found")
	}
	return nil
}
