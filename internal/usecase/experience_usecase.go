package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain"
)

type experienceUsecase struct {
	expRepo  domain.ExperienceRepository
	userRepo domain.UserRepository
}

func NewExperienceUsecase(expRepo domain.ExperienceRepository, userRepo domain.UserRepository) domain.ExperienceUsecase {
	return &experienceUsecase{expRepo: expRepo, userRepo: userRepo}
}

func (uc *experienceUsecase) Create(ctx context.Context, userID string, input domain.ExperienceCreate) (*domain.Experience, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	exp := &domain.Experience{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Current:     input.Current,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if exp.Current {
		exp.EndDate = nil
	}
	if err := uc.expRepo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (uc *experienceUsecase) ListByProfile(ctx context.Context, profileID string) ([]domain.Experience, error) {
	return uc.expRepo.FetchByProfile(ctx, profileID)
}

func (uc *experienceUsecase) GetSingle(ctx context.Context, id string) (*domain.Experience, error) {
	return uc.expRepo.GetByID(ctx, id)
}

func (uc *experienceUsecase) Update(ctx context.Context, id, userID string, upd domain.ExperienceUpdate) (*domain.Experience, error) {
	exp, err := uc.expRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(exp.ProfileID, profile.ID); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		exp.Title = *upd.Title
	}
	if upd.Company != nil {
		exp.Company = *upd.Company
	}
	if upd.Location != nil {
		exp.Location = upd.Location
	}
	if upd.StartDate != nil {
		exp.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		exp.EndDate = upd.EndDate
	}
	if upd.Current != nil {
		exp.Current = *upd.Current
	}
	if upd.Description != nil {
		exp.Description = upd.Description
	}
	if exp.Current {
		exp.EndDate = nil
	}
	exp.UpdatedAt = time.Now()

	if err := uc.expRepo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (uc *experienceUsecase) Delete(ctx context.Context, id, userID string) error {
	exp, err := uc.expRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return err
	}
	if err := requireOwner(exp.ProfileID, profile.ID); err != nil {
		return err
	}
	return uc.expRepo.Delete(ctx, exp.ID)
}
