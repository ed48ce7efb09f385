package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/password"
	"portfolio-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepo) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepo) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

var testJWT = config.JWTConfig{
	AccessSecret:     "access-secret",
	AccessExpiresIn:  "15m",
	RefreshSecret:    "refresh-secret",
	RefreshExpiresIn: "168h",
}

func newAuthUsecase(t *testing.T, repo domain.UserRepository, maxAttempts int) domain.AuthUsecase {
	t.Helper()
	auditLog, err := audit.NewLogger(false)
	assert.NoError(t, err)
	tracker := audit.NewLoginTracker(nil, maxAttempts, 15)
	return usecase.NewAuthUsecase(repo, password.NewHasher(4), tracker, auditLog, testJWT)
}

func storedUser(t *testing.T, plainPassword string) *domain.User {
	t.Helper()
	hashed, err := password.NewHasher(4).Hash(plainPassword)
	assert.NoError(t, err)
	return &domain.User{
		ID:       "user-1",
		Email:    "user@example.com",
		Password: hashed,
		Role:     domain.RoleUser,
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	mockRepo.On("CreateWithProfile", mock.Anything, mock.Anything, mock.Anything).
		Return(apperror.BadRequest("Email already exists"))

	result, err := uc.Register(context.Background(), domain.RegisterInput{
		Email:     "user@example.com",
		Password:  "password123",
		FirstName: "Jane",
	})
	assert.Nil(t, result)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	mockRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(storedUser(t, "correct-password"), nil)

	result, err := uc.Login(context.Background(), domain.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
		IP:       "10.0.0.1",
	})
	assert.Nil(t, result, "no token may be issued for a bad password")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "Password is incorrect", appErr.Message)
}

func TestLoginIssuesScopedTokens(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	mockRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(storedUser(t, "correct-password"), nil)

	result, err := uc.Login(context.Background(), domain.LoginInput{
		Email:    "user@example.com",
		Password: "correct-password",
		IP:       "10.0.0.1",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "user-1", result.User.ID)

	t.Run("Access token verifies only under the access secret", func(t *testing.T) {
		claims, err := token.Verify(result.AccessToken, testJWT.AccessSecret)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)

		_, err = token.Verify(result.AccessToken, testJWT.RefreshSecret)
		assert.Error(t, err)
	})

	t.Run("Refresh token verifies only under the refresh secret", func(t *testing.T) {
		_, err := token.Verify(result.RefreshToken, testJWT.AccessSecret)
		assert.Error(t, err)

		claims, err := token.Verify(result.RefreshToken, testJWT.RefreshSecret)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})
}

func TestLoginLockout(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 2)

	mockRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(storedUser(t, "correct-password"), nil)

	input := domain.LoginInput{Email: "user@example.com", Password: "wrong", IP: "10.0.0.1"}
	for i := 0; i < 2; i++ {
		_, err := uc.Login(context.Background(), input)
		assert.Error(t, err)
	}

	// Third attempt is blocked even with the right password.
	input.Password = "correct-password"
	_, err := uc.Login(context.Background(), input)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
}

func TestRefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	t.Run("Should reject an access token used as refresh token", func(t *testing.T) {
		accessToken, err := token.Create("user-1", "USER", "user@example.com", testJWT.AccessSecret, time.Minute)
		assert.NoError(t, err)

		_, err = uc.RefreshToken(context.Background(), accessToken)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Should reject when the account no longer exists", func(t *testing.T) {
		refreshToken, err := token.Create("gone", "USER", "gone@example.com", testJWT.RefreshSecret, time.Minute)
		assert.NoError(t, err)

		mockRepo.On("GetByID", mock.Anything, "gone").
			Return(nil, apperror.NotFound("User does not exist"))

		_, err = uc.RefreshToken(context.Background(), refreshToken)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Should mint a new access token for a valid refresh token", func(t *testing.T) {
		refreshToken, err := token.Create("user-1", "USER", "user@example.com", testJWT.RefreshSecret, time.Minute)
		assert.NoError(t, err)

		mockRepo.On("GetByID", mock.Anything, "user-1").
			Return(storedUser(t, "correct-password"), nil)

		accessToken, err := uc.RefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)

		claims, err := token.Verify(accessToken, testJWT.AccessSecret)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})
}

func TestChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	mockRepo.On("GetByID", mock.Anything, "user-1").
		Return(storedUser(t, "old-password"), nil)

	t.Run("Should reject a wrong old password", func(t *testing.T) {
		err := uc.ChangePassword(context.Background(), "user-1", "not-the-old-one", "new-password")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should store a new hash for the right old password", func(t *testing.T) {
		mockRepo.On("UpdatePassword", mock.Anything, "user-1", mock.AnythingOfType("string")).
			Return(nil).
			Run(func(args mock.Arguments) {
				hashed := args.String(2)
				assert.True(t, password.NewHasher(4).Compare("new-password", hashed))
			})

		err := uc.ChangePassword(context.Background(), "user-1", "old-password", "new-password")
		assert.NoError(t, err)
	})
}

func TestLoginUnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := newAuthUsecase(t, mockRepo, 5)

	mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperror.NotFound("User does not exist"))

	_, err := uc.Login(context.Background(), domain.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
		IP:       "10.0.0.1",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
