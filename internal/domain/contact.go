package domain

import (
	"context"
	"time"
)

// Contact is a submitted inquiry from the public contact form.
type Contact struct {
	ID        string    `json:"id"`
	ProfileID *string   `json:"profile_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	ProfileID *string
}

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	Fetch(ctx context.Context, limit, offset int) ([]Contact, int64, error)
	FetchAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

type ContactUsecase interface {
	// Submit persists the inquiry and fires the email notification.
	Submit(ctx context.Context, input ContactInput) (*Contact, error)
	List(ctx context.Context, opts PageOptions) ([]Contact, *PageMeta, error)
	Delete(ctx context.Context, id string) error
	// ExportXLSX renders every submission into a spreadsheet.
	ExportXLSX(ctx context.Context) ([]byte, error)
}
