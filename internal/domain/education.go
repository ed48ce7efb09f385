package domain

import (
	"context"
	"time"
)

type Education struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy *string    `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type EducationCreate struct {
	Institution  string
	Degree       string
	FieldOfStudy *string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Description  *string
}

type EducationUpdate struct {
	Institution  *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *time.Time
	EndDate      *time.Time
	Current      *bool
	Description  *string
}

type EducationRepository interface {
	Create(ctx context.Context, edu *Education) error
	FetchByProfile(ctx context.Context, profileID string) ([]Education, error)
	GetByID(ctx context.Context, id string) (*Education, error)
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id string) error
}

type EducationUsecase interface {
	Create(ctx context.Context, userID string, input EducationCreate) (*Education, error)
	ListByProfile(ctx context.Context, profileID string) ([]Education, error)
	GetSingle(ctx context.Context, id string) (*Education, error)
	Update(ctx context.Context, id, userID string, upd EducationUpdate) (*Education, error)
	Delete(ctx context.Context, id, userID string) error
}
