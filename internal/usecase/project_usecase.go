package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/upload"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	techRepo    domain.TechnologyRepository
	storage     upload.Storage
}

// NewProjectUsecase wires project rules over the repository, the technology
// lookup (kept in sync with project tech stacks) and object storage.
func NewProjectUsecase(projectRepo domain.ProjectRepository, techRepo domain.TechnologyRepository, storage upload.Storage) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, techRepo: techRepo, storage: storage}
}

func (uc *projectUsecase) Create(ctx context.Context, userID string, input domain.ProjectCreate, images []domain.UploadFile) (*domain.Project, error) {
	urls, err := uc.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectOngoing
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.NewString(),
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Features:    input.Features,
		TechStack:   input.TechStack,
		Images:      urls,
		LiveURL:     input.LiveURL,
		GithubURL:   input.GithubURL,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if len(urls) > 0 {
		project.FeaturedImage = &urls[0]
	}

	if err := uc.syncTechStack(ctx, input.TechStack); err != nil {
		uc.removeAll(ctx, urls)
		return nil, err
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		uc.removeAll(ctx, urls)
		return nil, err
	}
	return project, nil
}

func (uc *projectUsecase) List(ctx context.Context, filter domain.ProjectFilter, opts domain.PageOptions) ([]domain.ProjectWithCategory, *domain.PageMeta, error) {
	page, limit, offset := opts.Normalize()
	projects, total, err := uc.projectRepo.Fetch(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return projects, &domain.PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (uc *projectUsecase) GetSingle(ctx context.Context, id string) (*domain.ProjectWithCategory, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

func (uc *projectUsecase) Update(ctx context.Context, id, userID string, upd domain.ProjectUpdate, images []domain.UploadFile) (*domain.Project, error) {
	existing, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(existing.UserID, userID); err != nil {
		return nil, err
	}

	project := existing.Project
	if upd.Title != nil {
		project.Title = *upd.Title
	}
	if upd.Description != nil {
		project.Description = *upd.Description
	}
	if upd.CategoryID != nil {
		project.CategoryID = *upd.CategoryID
	}
	if upd.Features != nil {
		project.Features = upd.Features
	}
	if upd.TechStack != nil {
		project.TechStack = upd.TechStack
		if err := uc.syncTechStack(ctx, upd.TechStack); err != nil {
			return nil, err
		}
	}
	if upd.LiveURL != nil {
		project.LiveURL = upd.LiveURL
	}
	if upd.GithubURL != nil {
		project.GithubURL = upd.GithubURL
	}
	if upd.Status != nil {
		project.Status = *upd.Status
	}

	// Drop the images the client asked to remove, then append fresh uploads.
	removed := make(map[string]bool, len(upd.ImagesToRemove))
	for _, url := range upd.ImagesToRemove {
		removed[url] = true
	}
	var kept []string
	for _, url := range project.Images {
		if !removed[url] {
			kept = append(kept, url)
		}
	}

	newURLs, err := uc.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}
	project.Images = append(kept, newURLs...)

	// Featured image follows the first remaining image once the current one
	// is gone.
	if project.FeaturedImage != nil && removed[*project.FeaturedImage] {
		project.FeaturedImage = nil
	}
	if project.FeaturedImage == nil && len(project.Images) > 0 {
		project.FeaturedImage = &project.Images[0]
	}
	project.UpdatedAt = time.Now()

	if err := uc.projectRepo.Update(ctx, &project); err != nil {
		uc.removeAll(ctx, newURLs)
		return nil, err
	}

	uc.removeAll(ctx, upd.ImagesToRemove)
	return &project, nil
}

func (uc *projectUsecase) Delete(ctx context.Context, id, userID string) error {
	existing, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(existing.UserID, userID); err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	uc.removeAll(ctx, existing.Images)
	return nil
}

// uploadAll pushes every file concurrently, keeping result order aligned with
// the input. Any failure aborts the batch and cleans up what already landed.
func (uc *projectUsecase) uploadAll(ctx context.Context, files []domain.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			result, err := uc.storage.Upload(gctx, f.Filename, f.Content)
			if err != nil {
				return err
			}
			urls[i] = result.URL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.removeAll(context.WithoutCancel(ctx), urls)
		return nil, apperror.Internal(err)
	}
	return urls, nil
}

func (uc *projectUsecase) removeAll(ctx context.Context, urls []string) {
	var g errgroup.Group
	for _, url := range urls {
		if url == "" {
			continue
		}
		url := url
		g.Go(func() error {
			if err := uc.storage.Delete(ctx, uc.storage.KeyFromURL(url)); err != nil {
				logger.Log.Warn("failed to delete project image", "url", url, "error", err)
			}
			return nil
		})
	}
	g.Wait()
}

// syncTechStack upserts every named technology into the shared lookup so the
// frontend's filter lists stay aligned with what projects actually use.
func (uc *projectUsecase) syncTechStack(ctx context.Context, stack *domain.TechStack) error {
	if stack == nil {
		return nil
	}
	layers := []struct {
		category string
		names    []string
	}{
		{"Frontend", stack.Frontend},
		{"Backend", stack.Backend},
		{"DevOps", stack.Devops},
	}
	for _, layer := range layers {
		if len(layer.names) == 0 {
			continue
		}
		category, err := uc.techRepo.UpsertCategory(ctx, layer.category, generateSlug(layer.category))
		if err != nil {
			return err
		}
		for _, name := range layer.names {
			if _, err := uc.techRepo.Upsert(ctx, name, generateSlug(name), category.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Categories ---

func (uc *projectUsecase) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.ProjectCategory, error) {
	slugs, err := uc.projectRepo.CategorySlugs(ctx, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.ProjectCategory{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        uniqueSlugFromList(generateSlug(input.Name), slugs),
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projectRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *projectUsecase) ListCategories(ctx context.Context) ([]domain.ProjectCategory, error) {
	return uc.projectRepo.FetchCategories(ctx)
}

func (uc *projectUsecase) GetCategory(ctx context.Context, idOrSlug string) (*domain.ProjectCategory, error) {
	return uc.projectRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
}

func (uc *projectUsecase) UpdateCategory(ctx context.Context, idOrSlug string, upd domain.CategoryUpdate) (*domain.ProjectCategory, error) {
	category, err := uc.projectRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && *upd.Name != category.Name {
		category.Name = *upd.Name
		slugs, err := uc.projectRepo.CategorySlugs(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.Slug = uniqueSlugFromList(generateSlug(category.Name), slugs)
	}
	if upd.Description != nil {
		category.Description = upd.Description
	}
	category.UpdatedAt = time.Now()

	if err := uc.projectRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *projectUsecase) DeleteCategory(ctx context.Context, idOrSlug string) error {
	category, err := uc.projectRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}

	count, err := uc.projectRepo.CountProjectsInCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.BadRequest("Cannot delete category with existing projects")
	}
	return uc.projectRepo.DeleteCategory(ctx, category.ID)
}
