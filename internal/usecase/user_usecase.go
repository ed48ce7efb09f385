package usecase

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/upload"
)

type userUsecase struct {
	userRepo domain.UserRepository
	storage  upload.Storage
}

func NewUserUsecase(userRepo domain.UserRepository, storage upload.Storage) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, storage: storage}
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserWithProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.UserWithProfile{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Profile: profile,
	}, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := uc.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		profile.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		profile.LastName = upd.LastName
	}
	if upd.Designation != nil {
		profile.Designation = upd.Designation
	}
	if upd.Bio != nil {
		profile.Bio = upd.Bio
	}
	if upd.Location != nil {
		profile.Location = upd.Location
	}
	if upd.GithubURL != nil {
		profile.GithubURL = upd.GithubURL
	}
	if upd.LinkedinURL != nil {
		profile.LinkedinURL = upd.LinkedinURL
	}
	profile.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *userUsecase) UpdateProfileImage(ctx context.Context, userID string, file *domain.UploadFile) (*domain.Profile, error) {
	if file == nil {
		return nil, apperror.BadRequest("Profile image file is required")
	}

	profile, err := uc.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := uc.storage.Upload(ctx, file.Filename, file.Content)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	oldImage := profile.ProfileImage
	profile.ProfileImage = &result.URL
	profile.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	// The old object is orphaned once the row points at the new one.
	if oldImage != nil {
		if err := uc.storage.Delete(ctx, uc.storage.KeyFromURL(*oldImage)); err != nil {
			logger.Log.Warn("failed to delete previous profile image", "url", *oldImage, "error", err)
		}
	}

	return profile, nil
}
