package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, profile_id, category_id, name, proficiency, created_at, updated_at`

func scanSkill(row interface{ Scan(...any) error }, s *domain.Skill) error {
	return row.Scan(&s.ID, &s.ProfileID, &s.CategoryID, &s.Name, &s.Proficiency, &s.CreatedAt, &s.UpdatedAt)
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, profile_id, category_id, name, proficiency, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		skill.ID, skill.ProfileID, skill.CategoryID, skill.Name, skill.Proficiency,
		skill.CreatedAt, skill.UpdatedAt,
	)
	return translate(err, "Skill not found")
}

func (r *skillRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := scanSkill(rows, &s); err != nil {
			return nil, apperror.Internal(err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	return r.fetch(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY proficiency DESC, name ASC`)
}

func (r *skillRepo) FetchByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	return r.fetch(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE profile_id = $1 ORDER BY proficiency DESC, name ASC`,
		profileID)
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	var s domain.Skill
	err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id), &s)
	if err != nil {
		return nil, translate(err, "Skill not found")
	}
	return &s, nil
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	result, err := r.db.Exec(ctx,
		`UPDATE skills SET category_id = $2, name = $3, proficiency = $4, updated_at = $5 WHERE id = $1`,
		skill.ID, skill.CategoryID, skill.Name, skill.Proficiency, skill.UpdatedAt,
	)
	if err != nil {
		return translate(err, "Skill not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Skill not found")
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Skill not found")
	}
	return nil
}

// --- Categories ---

const skillCategorySelect = `
	SELECT c.id, c.name,
	       (SELECT COUNT(*) FROM skills s WHERE s.category_id = c.id) AS skill_count,
	       c.created_at
	FROM skill_categories c`

func (r *skillRepo) CreateCategory(ctx context.Context, category *domain.SkillCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_categories (id, name, created_at) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.CreatedAt,
	)
	return translate(err, "Category not found")
}

func (r *skillRepo) FetchCategories(ctx context.Context) ([]domain.SkillCategory, error) {
	rows, err := r.db.Query(ctx, skillCategorySelect+` ORDER BY c.name ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var categories []domain.SkillCategory
	for rows.Next() {
		var c domain.SkillCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.SkillCount, &c.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *skillRepo) GetCategoryByID(ctx context.Context, id string) (*domain.SkillCategory, error) {
	var c domain.SkillCategory
	err := r.db.QueryRow(ctx, skillCategorySelect+` WHERE c.id = $1`, id).
		Scan(&c.ID, &c.Name, &c.SkillCount, &c.CreatedAt)
	if err != nil {
		return nil, translate(err, "Category not found")
	}
	return &c, nil
}

func (r *skillRepo) UpdateCategory(ctx context.Context, category *domain.SkillCategory) error {
	result, err := r.db.Exec(ctx,
		`UPDATE skill_categories SET name = $2 WHERE id = $1`,
		category.ID, category.Name,
	)
	if err != nil {
		return translate(err, "Category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (r *skillRepo) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (r *skillRepo) CountSkillsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM skills WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
