package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, profile_id, institution, degree, field_of_study, start_date, end_date, current, description, created_at, updated_at`

func scanEducation(row interface{ Scan(...any) error }, e *domain.Education) error {
	return row.Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.FieldOfStudy,
		&e.StartDate, &e.EndDate, &e.Current, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO educations (id, profile_id, institution, degree, field_of_study, start_date, end_date, current, description, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		edu.ID, edu.ProfileID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate, edu.Current, edu.Description,
		edu.CreatedAt, edu.UpdatedAt,
	)
	return translate(err, "Education not found")
}

func (r *educationRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE profile_id = $1 ORDER BY start_date DESC`,
		profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := scanEducation(rows, &e); err != nil {
			return nil, apperror.Internal(err)
		}
		educations = append(educations, e)
	}
	return educations, nil
}

func (r *educationRepo) GetByID(ctx context.Context, id string) (*domain.Education, error) {
	var e domain.Education
	err := scanEducation(r.db.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE id = $1`, id), &e)
	if err != nil {
		return nil, translate(err, "Education not found")
	}
	return &e, nil
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.Education) error {
	result, err := r.db.Exec(ctx,
		`UPDATE educations SET
			institution = $2, degree = $3, field_of_study = $4, start_date = $5,
			end_date = $6, current = $7, description = $8, updated_at = $9
		 WHERE id = $1`,
		edu.ID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate,
		edu.EndDate, edu.Current, edu.Description, edu.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Education not found")
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Education not found")
	}
	return nil
}
