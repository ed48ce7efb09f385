package domain

import (
	"context"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile holds the public-facing personal data. One per user.
type Profile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     *string   `json:"last_name"`
	Designation  *string   `json:"designation"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	ProfileImage *string   `json:"profile_image"`
	GithubURL    *string   `json:"github_url"`
	LinkedinURL  *string   `json:"linkedin_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserWithProfile struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	Profile *Profile `json:"profile"`
}

// ProfileUpdate carries only the fields the client sent; nil means unchanged.
type ProfileUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Designation *string `json:"designation"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  *string
}

type LoginInput struct {
	Email    string
	Password string
	// IP of the client, used for failed-login tracking
	IP string
}

type AuthUser struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type LoginResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"-"`
	User         AuthUser `json:"user"`
}

type UserRepository interface {
	// CreateWithProfile persists the user and its profile in one transaction.
	CreateWithProfile(ctx context.Context, user *User, profile *Profile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*UserWithProfile, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*UserWithProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*Profile, error)
	UpdateProfileImage(ctx context.Context, userID string, file *UploadFile) (*Profile, error)
}
