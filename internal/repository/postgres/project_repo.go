package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

// tech_stack is stored as jsonb so the grouped layers survive round trips
// without a join table.
func marshalTechStack(ts *domain.TechStack) (any, error) {
	if ts == nil {
		return nil, nil
	}
	return json.Marshal(ts)
}

func unmarshalTechStack(raw []byte) (*domain.TechStack, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ts domain.TechStack
	if err := json.Unmarshal(raw, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	stack, err := marshalTechStack(project.TechStack)
	if err != nil {
		return apperror.Internal(err)
	}
	query := `INSERT INTO projects (id, user_id, category_id, title, description, features, tech_stack, featured_image, images, live_url, github_url, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.db.Exec(ctx, query,
		project.ID, project.UserID, project.CategoryID, project.Title, project.Description,
		project.Features, stack, project.FeaturedImage, project.Images,
		project.LiveURL, project.GithubURL, project.Status,
		project.CreatedAt, project.UpdatedAt,
	)
	return translate(err, "Project not found")
}

const projectSelect = `
	SELECT
		p.id, p.user_id, p.category_id, p.title, p.description, p.features,
		p.tech_stack, p.featured_image, p.images, p.live_url, p.github_url,
		p.status, p.created_at, p.updated_at,
		c.id, c.name, c.slug
	FROM projects p
	JOIN project_categories c ON p.category_id = c.id`

func scanProjectWithCategory(row interface{ Scan(...any) error }) (*domain.ProjectWithCategory, error) {
	var p domain.ProjectWithCategory
	var rawStack []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.CategoryID, &p.Title, &p.Description, &p.Features,
		&rawStack, &p.FeaturedImage, &p.Images, &p.LiveURL, &p.GithubURL,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
		&p.Category.ID, &p.Category.Name, &p.Category.Slug,
	)
	if err != nil {
		return nil, err
	}
	if p.TechStack, err = unmarshalTechStack(rawStack); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.ProjectWithCategory, error) {
	project, err := scanProjectWithCategory(r.db.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, translate(err, "Project not found")
	}
	return project, nil
}

func buildProjectFilter(filter domain.ProjectFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		conds = append(conds, "p.status = "+arg(*filter.Status))
	}
	if filter.CategoryID != "" {
		conds = append(conds, "p.category_id = "+arg(filter.CategoryID))
	}
	if filter.SearchTerm != "" {
		like := arg("%" + filter.SearchTerm + "%")
		conds = append(conds, fmt.Sprintf("(p.title ILIKE %s OR p.description ILIKE %s)", like, like))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *projectRepo) Fetch(ctx context.Context, filter domain.ProjectFilter, limit, offset int) ([]domain.ProjectWithCategory, int64, error) {
	where, args := buildProjectFilter(filter)

	query := projectSelect + where + fmt.Sprintf(
		" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer rows.Close()

	var projects []domain.ProjectWithCategory
	for rows.Next() {
		p, err := scanProjectWithCategory(rows)
		if err != nil {
			return nil, 0, apperror.Internal(err)
		}
		projects = append(projects, *p)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects p`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	return projects, total, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	stack, err := marshalTechStack(project.TechStack)
	if err != nil {
		return apperror.Internal(err)
	}
	query := `UPDATE projects SET
		category_id = $2,
		title = $3,
		description = $4,
		features = $5,
		tech_stack = $6,
		featured_image = $7,
		images = $8,
		live_url = $9,
		github_url = $10,
		status = $11,
		updated_at = $12
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		project.ID, project.CategoryID, project.Title, project.Description,
		project.Features, stack, project.FeaturedImage, project.Images,
		project.LiveURL, project.GithubURL, project.Status, project.UpdatedAt,
	)
	if err != nil {
		return translate(err, "Project not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Project not found")
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Project not found")
	}
	return nil
}

// --- Categories ---

const projectCategorySelect = `
	SELECT c.id, c.name, c.slug, c.description,
	       (SELECT COUNT(*) FROM projects p WHERE p.category_id = c.id) AS project_count,
	       c.created_at, c.updated_at
	FROM project_categories c`

func scanProjectCategory(row interface{ Scan(...any) error }) (*domain.ProjectCategory, error) {
	var c domain.ProjectCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ProjectCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *projectRepo) CreateCategory(ctx context.Context, category *domain.ProjectCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_categories (id, name, slug, description, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Slug, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	return translate(err, "Category not found")
}

func (r *projectRepo) FetchCategories(ctx context.Context) ([]domain.ProjectCategory, error) {
	rows, err := r.db.Query(ctx, projectCategorySelect+` ORDER BY c.name ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var categories []domain.ProjectCategory
	for rows.Next() {
		c, err := scanProjectCategory(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *projectRepo) GetCategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.ProjectCategory, error) {
	category, err := scanProjectCategory(r.db.QueryRow(ctx,
		projectCategorySelect+` WHERE c.id = $1 OR c.slug = $1`, idOrSlug))
	if err != nil {
		return nil, translate(err, "Category not found")
	}
	return category, nil
}

func (r *projectRepo) UpdateCategory(ctx context.Context, category *domain.ProjectCategory) error {
	result, err := r.db.Exec(ctx,
		`UPDATE project_categories SET name = $2, slug = $3, description = $4, updated_at = $5 WHERE id = $1`,
		category.ID, category.Name, category.Slug, category.Description, category.UpdatedAt,
	)
	if err != nil {
		return translate(err, "Category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (r *projectRepo) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM project_categories WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (r *projectRepo) CategorySlugs(ctx context.Context, excludeID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM project_categories WHERE id <> $1`, excludeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, apperror.Internal(err)
		}
		slugs = append(slugs, s)
	}
	return slugs, nil
}

func (r *projectRepo) CountProjectsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
