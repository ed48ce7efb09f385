package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the user and its profile atomically so a failed
// profile insert cannot leave an orphaned user.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, password, role, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Password, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.BadRequest("Email already exists")
		}
		return apperror.Internal(err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (id, user_id, first_name, last_name, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		profile.ID, profile.UserID, profile.FirstName, profile.LastName, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "User does not exist")
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "User does not exist")
	}
	return &user, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User does not exist")
	}
	return nil
}

const profileColumns = `id, user_id, first_name, last_name, designation, bio, location, profile_image, github_url, linkedin_url, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }, p *domain.Profile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Designation, &p.Bio,
		&p.Location, &p.ProfileImage, &p.GithubURL, &p.LinkedinURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *userRepo) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID), &p)
	if err != nil {
		return nil, translate(err, "Profile not found")
	}
	return &p, nil
}

func (r *userRepo) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id), &p)
	if err != nil {
		return nil, translate(err, "Profile not found")
	}
	return &p, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	result, err := r.db.Exec(ctx, `
		UPDATE profiles SET
			first_name = $2,
			last_name = $3,
			designation = $4,
			bio = $5,
			location = $6,
			profile_image = $7,
			github_url = $8,
			linkedin_url = $9,
			updated_at = $10
		WHERE id = $1`,
		profile.ID, profile.FirstName, profile.LastName, profile.Designation,
		profile.Bio, profile.Location, profile.ProfileImage, profile.GithubURL,
		profile.LinkedinURL, profile.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Profile not found")
	}
	return nil
}
