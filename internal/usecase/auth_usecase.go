package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/password"
	"portfolio-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   *password.Hasher
	tracker  *audit.LoginTracker
	audit    *audit.Logger
	cfg      config.JWTConfig
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	hasher *password.Hasher,
	tracker *audit.LoginTracker,
	auditLog *audit.Logger,
	cfg config.JWTConfig,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tracker:  tracker,
		audit:    auditLog,
		cfg:      cfg,
	}
}

func (uc *authUsecase) accessTTL() time.Duration {
	return token.ParseTTL(uc.cfg.AccessExpiresIn, 15*time.Minute)
}

func (uc *authUsecase) refreshTTL() time.Duration {
	return token.ParseTTL(uc.cfg.RefreshExpiresIn, 7*24*time.Hour)
}

func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.UserWithProfile, error) {
	hashed, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Password:  hashed,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile := &domain.Profile{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	return &domain.UserWithProfile{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Profile: profile,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginResult, error) {
	if uc.tracker.IsBlocked(ctx, input.Email, input.IP) {
		uc.audit.LoginBlocked(input.Email, input.IP)
		return nil, apperror.New(http.StatusTooManyRequests, "Too many failed login attempts, try again later", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		uc.audit.LoginFailed(input.Email, input.IP, "unknown email")
		return nil, err
	}

	if !uc.hasher.Compare(input.Password, user.Password) {
		uc.tracker.RecordFailure(ctx, input.Email, input.IP)
		uc.audit.LoginFailed(input.Email, input.IP, "wrong password")
		return nil, apperror.Unauthorized("Password is incorrect")
	}

	accessToken, err := token.Create(user.ID, string(user.Role), user.Email, uc.cfg.AccessSecret, uc.accessTTL())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refreshToken, err := token.Create(user.ID, string(user.Role), user.Email, uc.cfg.RefreshSecret, uc.refreshTTL())
	if err != nil {
		return nil, apperror.Internal(err)
	}

	uc.tracker.Reset(ctx, input.Email, input.IP)
	uc.audit.LoginSucceeded(user.ID, user.Email, input.IP)

	return &domain.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: domain.AuthUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// RefreshToken mints a fresh access token off a valid refresh token. The
// refresh token itself is never re-issued here.
func (uc *authUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := token.Verify(refreshToken, uc.cfg.RefreshSecret)
	if err != nil {
		return "", apperror.Unauthorized("Invalid refresh token")
	}

	// Confirms the account still exists before re-issuing access.
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", apperror.Unauthorized("Invalid refresh token")
	}

	accessToken, err := token.Create(user.ID, string(user.Role), user.Email, uc.cfg.AccessSecret, uc.accessTTL())
	if err != nil {
		return "", apperror.Internal(err)
	}
	return accessToken, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !uc.hasher.Compare(oldPassword, user.Password) {
		return apperror.Unauthorized("Old password is incorrect")
	}

	hashed, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	uc.audit.PasswordChanged(userID)
	return nil
}
