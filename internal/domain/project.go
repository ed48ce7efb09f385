package domain

import (
	"context"
	"time"
)

type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ONGOING"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// TechStack groups a project's technologies by layer. Arrives from the
// frontend either as JSON or as a JSON-encoded string; handlers normalize it
// before it reaches the usecase.
type TechStack struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Devops   []string `json:"devops"`
}

type Project struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	CategoryID    string        `json:"category_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Features      []string      `json:"features"`
	TechStack     *TechStack    `json:"tech_stack"`
	FeaturedImage *string       `json:"featured_image"`
	Images        []string      `json:"images"`
	LiveURL       *string       `json:"live_url"`
	GithubURL     *string       `json:"github_url"`
	Status        ProjectStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type ProjectWithCategory struct {
	Project
	Category CategoryRef `json:"category"`
}

type ProjectFilter struct {
	SearchTerm string
	Status     *ProjectStatus
	CategoryID string
}

type ProjectCreate struct {
	Title       string
	Description string
	CategoryID  string
	Features    []string
	TechStack   *TechStack
	LiveURL     *string
	GithubURL   *string
	Status      ProjectStatus
}

type ProjectUpdate struct {
	Title       *string
	Description *string
	CategoryID  *string
	Features    []string
	TechStack   *TechStack
	LiveURL     *string
	GithubURL   *string
	Status      *ProjectStatus
	// ImagesToRemove lists stored image URLs the client wants deleted.
	ImagesToRemove []string
}

type ProjectCategory struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	ProjectCount int64     `json:"project_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*ProjectWithCategory, error)
	Fetch(ctx context.Context, filter ProjectFilter, limit, offset int) ([]ProjectWithCategory, int64, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category *ProjectCategory) error
	FetchCategories(ctx context.Context) ([]ProjectCategory, error)
	GetCategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*ProjectCategory, error)
	UpdateCategory(ctx context.Context, category *ProjectCategory) error
	DeleteCategory(ctx context.Context, id string) error
	CategorySlugs(ctx context.Context, excludeID string) ([]string, error)
	CountProjectsInCategory(ctx context.Context, categoryID string) (int64, error)
}

type ProjectUsecase interface {
	Create(ctx context.Context, userID string, input ProjectCreate, images []UploadFile) (*Project, error)
	List(ctx context.Context, filter ProjectFilter, opts PageOptions) ([]ProjectWithCategory, *PageMeta, error)
	GetSingle(ctx context.Context, id string) (*ProjectWithCategory, error)
	Update(ctx context.Context, id, userID string, upd ProjectUpdate, images []UploadFile) (*Project, error)
	Delete(ctx context.Context, id, userID string) error

	CreateCategory(ctx context.Context, input CategoryInput) (*ProjectCategory, error)
	ListCategories(ctx context.Context) ([]ProjectCategory, error)
	GetCategory(ctx context.Context, idOrSlug string) (*ProjectCategory, error)
	UpdateCategory(ctx context.Context, idOrSlug string, upd CategoryUpdate) (*ProjectCategory, error)
	DeleteCategory(ctx context.Context, idOrSlug string) error
}
