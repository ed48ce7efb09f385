package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// PageOptions are 1-based pagination inputs from the query string.
type PageOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize clamps the options and returns page, limit and the SQL offset.
func (p PageOptions) Normalize() (int, int, int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// PageMeta is the pagination block of the response envelope.
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// UploadFile is an in-memory uploaded file, normalized at the transport
// boundary so services never touch multipart types.
type UploadFile struct {
	Filename string
	Content  []byte
}

// CategoryRef is the embedded category shape returned with blogs/projects.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryInput creates a blog or project category; the slug derives from Name.
type CategoryInput struct {
	Name        string
	Description *string
}

type CategoryUpdate struct {
	Name        *string
	Description *string
}
