package domain

import (
	"context"
	"time"
)

// Technology is a lookup entry, unique by name. Value is the slugged form
// used by the frontend for filtering.
type Technology struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Value      string    `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}

type TechnologyCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type TechnologyRepository interface {
	// Upsert inserts the technology if its name is new and returns the stored
	// row either way.
	Upsert(ctx context.Context, name, value, categoryID string) (*Technology, error)
	Fetch(ctx context.Context) ([]Technology, error)
	GetByID(ctx context.Context, id string) (*Technology, error)
	Delete(ctx context.Context, id string) error

	UpsertCategory(ctx context.Context, name, value string) (*TechnologyCategory, error)
	FetchCategories(ctx context.Context) ([]TechnologyCategory, error)
	CountTechnologiesInCategory(ctx context.Context, categoryID string) (int64, error)
	DeleteCategory(ctx context.Context, id string) error
}

type TechnologyUsecase interface {
	Create(ctx context.Context, name, categoryName string) (*Technology, error)
	List(ctx context.Context) ([]Technology, error)
	Delete(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]TechnologyCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}
