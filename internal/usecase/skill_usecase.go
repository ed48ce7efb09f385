package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository, userRepo domain.UserRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, userRepo: userRepo}
}

func (uc *skillUsecase) Create(ctx context.Context, userID string, input domain.SkillCreate) (*domain.Skill, error) {
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	skill := &domain.Skill{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Proficiency: input.Proficiency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (uc *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return uc.skillRepo.Fetch(ctx)
}

func (uc *skillUsecase) ListByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	return uc.skillRepo.FetchByProfile(ctx, profileID)
}

func (uc *skillUsecase) GetSingle(ctx context.Context, id string) (*domain.Skill, error) {
	return uc.skillRepo.GetByID(ctx, id)
}

func (uc *skillUsecase) Update(ctx context.Context, id, userID string, upd domain.SkillUpdate) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(skill.ProfileID, profile.ID); err != nil {
		return nil, err
	}

	if upd.Name != nil {
		skill.Name = *upd.Name
	}
	if upd.Proficiency != nil {
		skill.Proficiency = *upd.Proficiency
	}
	if upd.CategoryID != nil {
		skill.CategoryID = *upd.CategoryID
	}
	skill.UpdatedAt = time.Now()

	if err := uc.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (uc *skillUsecase) Delete(ctx context.Context, id, userID string) error {
	skill, err := uc.skillRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	profile, err := callerProfile(ctx, uc.userRepo, userID)
	if err != nil {
		return err
	}
	if err := requireOwner(skill.ProfileID, profile.ID); err != nil {
		return err
	}
	return uc.skillRepo.Delete(ctx, skill.ID)
}

// --- Categories ---

func (uc *skillUsecase) CreateCategory(ctx context.Context, name string) (*domain.SkillCategory, error) {
	category := &domain.SkillCategory{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.skillRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *skillUsecase) ListCategories(ctx context.Context) ([]domain.SkillCategory, error) {
	return uc.skillRepo.FetchCategories(ctx)
}

func (uc *skillUsecase) UpdateCategory(ctx context.Context, id, name string) (*domain.SkillCategory, error) {
	category, err := uc.skillRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := uc.skillRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *skillUsecase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.skillRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := uc.skillRepo.CountSkillsInCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.BadRequest("Cannot delete category with existing skills")
	}
	return uc.skillRepo.DeleteCategory(ctx, category.ID)
}
