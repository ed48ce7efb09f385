package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

const contactColumns = `id, profile_id, name, email, subject, message, created_at`

func (r *contactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO contacts (id, profile_id, name, email, subject, message, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		contact.ID, contact.ProfileID, contact.Name, contact.Email,
		contact.Subject, contact.Message, contact.CreatedAt,
	)
	return translate(err, "Contact not found")
}

func (r *contactRepo) scanRows(rows interface {
	Next() bool
	Scan(...any) error
	Close()
}) ([]domain.Contact, error) {
	defer rows.Close()
	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, apperror.Internal(err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *contactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Contact, int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	contacts, err := r.scanRows(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return contacts, total, nil
}

func (r *contactRepo) FetchAll(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return r.scanRows(rows)
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.ProfileID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, translate(err, "Contact not found")
	}
	return &c, nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Contact not found")
	}
	return nil
}
