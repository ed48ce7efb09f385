package domain

import (
	"context"
	"time"
)

// About is the single narrative section owned by a profile.
type About struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	Quotes    []Quote   `json:"quotes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Quote struct {
	ID        string    `json:"id"`
	AboutID   string    `json:"about_id"`
	Text      string    `json:"text"`
	Author    *string   `json:"author"`
	Source    *string   `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type AboutUpsert struct {
	Title   string
	Content string
}

type AboutUpdate struct {
	Title   *string
	Content *string
}

type QuoteInput struct {
	Text   string
	Author *string
	Source *string
}

type QuoteUpdate struct {
	Text   *string
	Author *string
	Source *string
}

type AboutRepository interface {
	Create(ctx context.Context, about *About) error
	// GetByProfileID loads the about section with its quotes.
	GetByProfileID(ctx context.Context, profileID string) (*About, error)
	Update(ctx context.Context, about *About) error

	CreateQuote(ctx context.Context, quote *Quote) error
	GetQuoteByID(ctx context.Context, id string) (*Quote, error)
	FetchQuotes(ctx context.Context, aboutID string) ([]Quote, error)
	UpdateQuote(ctx context.Context, quote *Quote) error
	DeleteQuote(ctx context.Context, id string) error
}

type AboutUsecase interface {
	// CreateOrUpdate upserts the caller's about section; a new image replaces
	// (and deletes) the previous one.
	CreateOrUpdate(ctx context.Context, userID string, input AboutUpsert, image *UploadFile) (*About, error)
	GetByProfile(ctx context.Context, profileID string) (*About, error)
	Update(ctx context.Context, userID string, upd AboutUpdate, image *UploadFile) (*About, error)

	CreateQuote(ctx context.Context, userID string, input QuoteInput) (*Quote, error)
	ListQuotes(ctx context.Context, userID string) ([]Quote, error)
	UpdateQuote(ctx context.Context, userID, quoteID string, upd QuoteUpdate) (*Quote, error)
	DeleteQuote(ctx context.Context, userID, quoteID string) error
}
