package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain"
)

type educationUsecase struct {
	eduRepo  domain.EducationRepository
	userRepo domain.UserRepository
}

func NewEducationUsecase(eduRepo domain.EducationRepository, userRepo domain.UserRepository) domain.EducationUsecase {
	return &educationUsecase{eduRepo: eduRepo, userRepo: userRepo}
}

func (uc *educationUsecase) Create(ctx context.Context, userID string, input domain.EducationCreate) (*domain.Education, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	edu := &domain.Education{
		ID:           uuid.NewString(),
		ProfileID:    profile.ID,
		Institution:  input.Institution,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Current:      input.Current,
		Description:  input.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if edu.Current {
		edu.EndDate = nil
	}
	if err := uc.eduRepo.Create(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (uc *educationUsecase) ListByProfile(ctx context.Context, profileID string) ([]domain.Education, error) {
	return uc.eduRepo.FetchByProfile(ctx, profileID)
}

func (uc *educationUsecase) GetSingle(ctx context.Context, id string) (*domain.Education, error) {
	return uc.eduRepo.GetByID(ctx, id)
}

func (uc *educationUsecase) Update(ctx context.Context, id, userID string, upd domain.EducationUpdate) (*domain.Education, error) {
	edu, err := uc.eduRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(edu.ProfileID, profile.ID); err != nil {
		return nil, err
	}

	if upd.Institution != nil {
		edu.Institution = *upd.Institution
	}
	if upd.Degree != nil {
		edu.Degree = *upd.Degree
	}
	if upd.FieldOfStudy != nil {
		edu.FieldOfStudy = upd.FieldOfStudy
	}
	if upd.StartDate != nil {
		edu.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		edu.EndDate = upd.EndDate
	}
	if upd.Current != nil {
		edu.Current = *upd.Current
	}
	if upd.Description != nil {
		edu.Description = upd.Description
	}
	if edu.Current {
		edu.EndDate = nil
	}
	edu.UpdatedAt = time.Now()

	if err := uc.eduRepo.Update(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (uc *educationUsecase) Delete(ctx context.Context, id, userID string) error {
	edu, err := uc.eduRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return err
	}
	if err := requireOwner(edu.ProfileID, profile.ID); err != nil {
		return err
	}
	return uc.eduRepo.Delete(ctx, edu.ID)
}
