package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type aboutRepo struct {
	db *pgxpool.Pool
}

func NewAboutRepository(db *pgxpool.Pool) domain.AboutRepository {
	return &aboutRepo{db: db}
}

func (r *aboutRepo) Create(ctx context.Context, about *domain.About) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO abouts (id, profile_id, title, content, image, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		about.ID, about.ProfileID, about.Title, about.Content, about.Image,
		about.CreatedAt, about.UpdatedAt,
	)
	return translate(err, "About section not found")
}

func (r *aboutRepo) GetByProfileID(ctx context.Context, profileID string) (*domain.About, error) {
	var a domain.About
	err := r.db.QueryRow(ctx,
		`SELECT id, profile_id, title, content, image, created_at, updated_at
         FROM abouts WHERE profile_id = $1`, profileID,
	).Scan(&a.ID, &a.ProfileID, &a.Title, &a.Content, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translate(err, "About section not found")
	}

	quotes, err := r.FetchQuotes(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Quotes = quotes
	return &a, nil
}

func (r *aboutRepo) Update(ctx context.Context, about *domain.About) error {
	result, err := r.db.Exec(ctx,
		`UPDATE abouts SET title = $2, content = $3, image = $4, updated_at = $5 WHERE id = $1`,
		about.ID, about.Title, about.Content, about.Image, about.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("About section not found")
	}
	return nil
}

func (r *aboutRepo) CreateQuote(ctx context.Context, quote *domain.Quote) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO quotes (id, about_id, text, author, source, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		quote.ID, quote.AboutID, quote.Text, quote.Author, quote.Source, quote.CreatedAt,
	)
	return translate(err, "Quote not found")
}

func (r *aboutRepo) GetQuoteByID(ctx context.Context, id string) (*domain.Quote, error) {
	var q domain.Quote
	err := r.db.QueryRow(ctx,
		`SELECT id, about_id, text, author, source, created_at FROM quotes WHERE id = $1`, id,
	).Scan(&q.ID, &q.AboutID, &q.Text, &q.Author, &q.Source, &q.CreatedAt)
	if err != nil {
		return nil, translate(err, "Quote not found")
	}
	return &q, nil
}

func (r *aboutRepo) FetchQuotes(ctx context.Context, aboutID string) ([]domain.Quote, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, about_id, text, author, source, created_at
         FROM quotes WHERE about_id = $1 ORDER BY created_at DESC`, aboutID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.AboutID, &q.Text, &q.Author, &q.Source, &q.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *aboutRepo) UpdateQuote(ctx context.Context, quote *domain.Quote) error {
	result, err := r.db.Exec(ctx,
		`UPDATE quotes SET text = $2, author = $3, source = $4 WHERE id = $1`,
		quote.ID, quote.Text, quote.Author, quote.Source,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Quote not found")
	}
	return nil
}

func (r *aboutRepo) DeleteQuote(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Quote not found")
	}
	return nil
}
