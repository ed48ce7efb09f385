package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID          string     `json:"id"`
	ProfileID   string     `json:"profile_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ExperienceCreate struct {
	Title       string
	Company     string
	Location    *string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description *string
}

type ExperienceUpdate struct {
	Title       *string
	Company     *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     *bool
	Description *string
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	FetchByProfile(ctx context.Context, profileID string) ([]Experience, error)
	GetByID(ctx context.Context, id string) (*Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	Create(ctx context.Context, userID string, input ExperienceCreate) (*Experience, error)
	ListByProfile(ctx context.Context, profileID string) ([]Experience, error)
	GetSingle(ctx context.Context, id string) (*Experience, error)
	Update(ctx context.Context, id, userID string, upd ExperienceUpdate) (*Experience, error)
	Delete(ctx context.Context, id, userID string) error
}
