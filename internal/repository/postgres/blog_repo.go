package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type blogRepo struct {
	db *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) domain.BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	query := `INSERT INTO blogs (id, user_id, category_id, title, slug, content, summary, tags, featured_image, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		blog.ID, blog.UserID, blog.CategoryID, blog.Title, blog.Slug, blog.Content,
		blog.Summary, blog.Tags, blog.FeaturedImage, blog.Status,
		blog.CreatedAt, blog.UpdatedAt,
	)
	return translate(err, "Blog not found")
}

const blogSelect = `
	SELECT
		b.id, b.user_id, b.category_id, b.title, b.slug, b.content, b.summary,
		b.tags, b.featured_image, b.status, b.created_at, b.updated_at,
		u.id, u.email, p.first_name, p.last_name, p.profile_image,
		c.id, c.name, c.slug
	FROM blogs b
	JOIN users u ON b.user_id = u.id
	JOIN profiles p ON p.user_id = u.id
	JOIN blog_categories c ON b.category_id = c.id`

func scanBlogWithRelations(row interface{ Scan(...any) error }) (*domain.BlogWithRelations, error) {
	var b domain.BlogWithRelations
	err := row.Scan(
		&b.ID, &b.UserID, &b.CategoryID, &b.Title, &b.Slug, &b.Content, &b.Summary,
		&b.Tags, &b.FeaturedImage, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Email, &b.Author.FirstName, &b.Author.LastName, &b.Author.ProfileImage,
		&b.Category.ID, &b.Category.Name, &b.Category.Slug,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.BlogWithRelations, error) {
	query := blogSelect + ` WHERE b.id = $1 OR b.slug = $1`
	blog, err := scanBlogWithRelations(r.db.QueryRow(ctx, query, idOrSlug))
	if err != nil {
		return nil, translate(err, "Blog not found")
	}
	return blog, nil
}

// buildBlogFilter assembles the WHERE clause. Search matches title, content
// and exact tags, case-insensitively for text columns.
func buildBlogFilter(filter domain.BlogFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != "" {
		conds = append(conds, "b.user_id = "+arg(filter.UserID))
	}
	if filter.Status != nil {
		conds = append(conds, "b.status = "+arg(*filter.Status))
	}
	if filter.CategoryID != "" {
		conds = append(conds, "b.category_id = "+arg(filter.CategoryID))
	}
	if filter.SearchTerm != "" {
		like := arg("%" + filter.SearchTerm + "%")
		exact := arg(filter.SearchTerm)
		conds = append(conds, fmt.Sprintf(
			"(b.title ILIKE %s OR b.content ILIKE %s OR %s = ANY(b.tags))", like, like, exact))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *blogRepo) Fetch(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogWithRelations, int64, error) {
	where, args := buildBlogFilter(filter)

	query := blogSelect + where + fmt.Sprintf(
		" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	defer rows.Close()

	var blogs []domain.BlogWithRelations
	for rows.Next() {
		b, err := scanBlogWithRelations(rows)
		if err != nil {
			return nil, 0, apperror.Internal(err)
		}
		blogs = append(blogs, *b)
	}

	countQuery := `SELECT COUNT(*) FROM blogs b` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}

	return blogs, total, nil
}

func (r *blogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	query := `UPDATE blogs SET
		category_id = $2,
		title = $3,
		slug = $4,
		content = $5,
		summary = $6,
		tags = $7,
		featured_image = $8,
		status = $9,
		updated_at = $10
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		blog.ID, blog.CategoryID, blog.Title, blog.Slug, blog.Content,
		blog.Summary, blog.Tags, blog.FeaturedImage, blog.Status, blog.UpdatedAt,
	)
	if err != nil {
		return translate(err, "Blog not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Blog not found")
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Blog not found")
	}
	return nil
}

func (r *blogRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

// --- Categories ---

const blogCategorySelect = `
	SELECT c.id, c.name, c.slug, c.description,
	       (SELECT COUNT(*) FROM blogs b WHERE b.category_id = c.id) AS blog_count,
	       c.created_at, c.updated_at
	FROM blog_categories c`

func scanBlogCategory(row interface{ Scan(...any) error }) (*domain.BlogCategory, error) {
	var c domain.BlogCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.BlogCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *blogRepo) CreateCategory(ctx context.Context, category *domain.BlogCategory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blog_categories (id, name, slug, description, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Slug, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	return translate(err, "Category not found")
}

func (r *blogRepo) FetchCategories(ctx context.Context) ([]domain.BlogCategory, error) {
	rows, err := r.db.Query(ctx, blogCategorySelect+` ORDER BY c.name ASC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var categories []domain.BlogCategory
	for rows.Next() {
		c, err := scanBlogCategory(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *blogRepo) GetCategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.BlogCategory, error) {
	category, err := scanBlogCategory(r.db.QueryRow(ctx,
		blogCategorySelect+` WHERE c.id = $1 OR c.slug = $1`, idOrSlug))
	if err != nil {
		return nil, translate(err, "Category not found")
	}
	return category, nil
}

func (r *blogRepo) UpdateCategory(ctx context.Context, category *domain.BlogCategory) error {
	result, err := r.db.Exec(ctx,
		`UPDATE blog_categories SET name = $2, slug = $3, description = $4, updated_at = $5 WHERE id = $1`,
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

func (r *blogRepo) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Category not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Category not found")
	}
	return nil
}

func (r *blogRepo) CategorySlugs(ctx context.Context, excludeID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT slug FROM blog_categories WHERE id <> $1`, excludeID)
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

func (r *blogRepo) CountBlogsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM blogs WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
