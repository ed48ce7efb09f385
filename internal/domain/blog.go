package domain

import (
	"context"
	"time"
)

type BlogStatus string

const (
	BlogDraft     BlogStatus = "DRAFT"
	BlogPublished BlogStatus = "PUBLISHED"
	BlogArchived  BlogStatus = "ARCHIVED"
)

type Blog struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	CategoryID    string     `json:"category_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Summary       *string    `json:"summary"`
	Tags          []string   `json:"tags"`
	FeaturedImage *string    `json:"featured_image"`
	Status        BlogStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BlogAuthor is the author projection included with blog reads.
type BlogAuthor struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name"`
	ProfileImage *string `json:"profile_image"`
}

type BlogWithRelations struct {
	Blog
	Author   BlogAuthor  `json:"author"`
	Category CategoryRef `json:"category"`
}

type BlogFilter struct {
	SearchTerm string
	Status     *BlogStatus
	CategoryID string
	// UserID restricts the listing to one author (the "my blogs" view)
	UserID string
}

type BlogCreate struct {
	Title      string
	Content    string
	Summary    *string
	CategoryID string
	Tags       []string
	Status     BlogStatus
}

type BlogUpdate struct {
	Title      *string
	Content    *string
	Summary    *string
	CategoryID *string
	Tags       []string
	Status     *BlogStatus
}

type BlogCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	BlogCount   int64     `json:"blog_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	// GetByIDOrSlug resolves either identifier in a single query.
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*BlogWithRelations, error)
	Fetch(ctx context.Context, filter BlogFilter, limit, offset int) ([]BlogWithRelations, int64, error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	CreateCategory(ctx context.Context, category *BlogCategory) error
	FetchCategories(ctx context.Context) ([]BlogCategory, error)
	GetCategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*BlogCategory, error)
	UpdateCategory(ctx context.Context, category *BlogCategory) error
	DeleteCategory(ctx context.Context, id string) error
	CategorySlugs(ctx context.Context, excludeID string) ([]string, error)
	CountBlogsInCategory(ctx context.Context, categoryID string) (int64, error)
}

type BlogUsecase interface {
	Create(ctx context.Context, userID string, input BlogCreate, image *UploadFile) (*Blog, error)
	List(ctx context.Context, filter BlogFilter, opts PageOptions) ([]BlogWithRelations, *PageMeta, error)
	ListOwn(ctx context.Context, userID string, filter BlogFilter, opts PageOptions) ([]BlogWithRelations, *PageMeta, error)
	GetSingle(ctx context.Context, idOrSlug string) (*BlogWithRelations, error)
	Update(ctx context.Context, idOrSlug, userID string, upd BlogUpdate, image *UploadFile) (*Blog, error)
	Delete(ctx context.Context, idOrSlug, userID string) error

	CreateCategory(ctx context.Context, input CategoryInput) (*BlogCategory, error)
	ListCategories(ctx context.Context) ([]BlogCategory, error)
	GetCategory(ctx context.Context, idOrSlug string) (*BlogCategory, error)
	UpdateCategory(ctx context.Context, idOrSlug string, upd CategoryUpdate) (*BlogCategory, error)
	DeleteCategory(ctx context.Context, idOrSlug string) error
}
