package domain

import (
	"context"
	"time"
)

type Skill struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"` // 0-100
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillCreate struct {
	Name        string
	Proficiency int
	CategoryID  string
}

type SkillUpdate struct {
	Name        *string
	Proficiency *int
	CategoryID  *string
}

type SkillCategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SkillCount int64     `json:"skill_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	// Fetch returns all skills ordered by proficiency descending.
	Fetch(ctx context.Context) ([]Skill, error)
	FetchByProfile(ctx context.Context, profileID string) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, category *SkillCategory) error
	FetchCategories(ctx context.Context) ([]SkillCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*SkillCategory, error)
	UpdateCategory(ctx context.Context, category *SkillCategory) error
	DeleteCategory(ctx context.Context, id string) error
	CountSkillsInCategory(ctx context.Context, categoryID string) (int64, error)
}

type SkillUsecase interface {
	Create(ctx context.Context, userID string, input SkillCreate) (*Skill, error)
	List(ctx context.Context) ([]Skill, error)
	ListByProfile(ctx context.Context, profileID string) ([]Skill, error)
	GetSingle(ctx context.Context, id string) (*Skill, error)
	Update(ctx context.Context, id, userID string, upd SkillUpdate) (*Skill, error)
	Delete(ctx context.Context, id, userID string) error

	CreateCategory(ctx context.Context, name string) (*SkillCategory, error)
	ListCategories(ctx context.Context) ([]SkillCategory, error)
	UpdateCategory(ctx context.Context, id, name string) (*SkillCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}
