package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type technologyRepo struct {
	db *pgxpool.Pool
}

func NewTechnologyRepository(db *pgxpool.Pool) domain.TechnologyRepository {
	return &technologyRepo{db: db}
}

func (r *technologyRepo) Upsert(ctx context.Context, name, value, categoryID string) (*domain.Technology, error) {
	var t domain.Technology
	err := r.db.QueryRow(ctx,
		`INSERT INTO technologies (id, category_id, name, value, created_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
         RETURNING id, category_id, name, value, created_at`,
		uuid.NewString(), categoryID, name, value, time.Now(),
	).Scan(&t.ID, &t.CategoryID, &t.Name, &t.Value, &t.CreatedAt)
	if err != nil {
		return nil, translate(err, "Technology not found")
	}
	return &t, nil
}

func (r *technologyRepo) Fetch(ctx context.Context) ([]domain.Technology, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category_id, name, value, created_at FROM technologies ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var techs []domain.Technology
	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Value, &t.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		techs = append(techs, t)
	}
	return techs, nil
}

func (r *technologyRepo) GetByID(ctx context.Context, id string) (*domain.Technology, error) {
	var t domain.Technology
	err := r.db.QueryRow(ctx,
		`SELECT id, category_id, name, value, created_at FROM technologies WHERE id = $1`, id,
	).Scan(&t.ID, &t.CategoryID, &t.Name, &t.Value, &t.CreatedAt)
	if err != nil {
		return nil, translate(err, "Technology not found")
	}
	return &t, nil
}

func (r *technologyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Technology not found")
	}
	return nil
}

func (r *technologyRepo) UpsertCategory(ctx context.Context, name, value string) (*domain.TechnologyCategory, error) {
	var c domain.TechnologyCategory
	err := r.db.QueryRow(ctx,
		`INSERT INTO technology_categories (id, name, value, created_at)
         VALUES ($1, $2, $3, $4)
         ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
         RETURNING id, name, value, created_at`,
		uuid.NewString(), name, value, time.Now(),
	).Scan(&c.ID, &c.Name, &c.Value, &c.CreatedAt)
	if err != nil {
		return nil, translate(err, "Technology category not found")
	}
	return &c, nil
}

func (r *technologyRepo) FetchCategories(ctx context.Context) ([]domain.TechnologyCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, value, created_at FROM technology_categories ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var categories []domain.TechnologyCategory
	for rows.Next() {
		var c domain.TechnologyCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Value, &c.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *technologyRepo) CountTechnologiesInCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM technologies WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (r *technologyRepo) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM technology_categories WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Technology category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Technology category not found")
	}
	return nil
}
