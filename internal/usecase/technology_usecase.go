package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type technologyUsecase struct {
	techRepo domain.TechnologyRepository
}

func NewTechnologyUsecase(techRepo domain.TechnologyRepository) domain.TechnologyUsecase {
	return &technologyUsecase{techRepo: techRepo}
}

func (uc *technologyUsecase) Create(ctx context.Context, name, categoryName string) (*domain.Technology, error) {
	category, err := uc.techRepo.UpsertCategory(ctx, categoryName, generateSlug(categoryName))
	if err != nil {
		return nil, err
	}
	return uc.techRepo.Upsert(ctx, name, generateSlug(name), category.ID)
}

func (uc *technologyUsecase) List(ctx context.Context) ([]domain.Technology, error) {
	return uc.techRepo.Fetch(ctx)
}

func (uc *technologyUsecase) Delete(ctx context.Context, id string) error {
	tech, err := uc.techRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return uc.techRepo.Delete(ctx, tech.ID)
}

func (uc *technologyUsecase) ListCategories(ctx context.Context) ([]domain.TechnologyCategory, error) {
	return uc.techRepo.FetchCategories(ctx)
}

func (uc *technologyUsecase) DeleteCategory(ctx context.Context, id string) error {
	count, err := uc.techRepo.CountTechnologiesInCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.BadRequest("Cannot delete category with existing technologies")
	}
	return uc.techRepo.DeleteCategory(ctx, id)
}
