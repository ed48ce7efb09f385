package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/upload"
)

type blogUsecase struct {
	blogRepo domain.BlogRepository
	storage  upload.Storage
}

// NewBlogUsecase wires the blog rules over the repository and the image store
// serving featured images.
func NewBlogUsecase(blogRepo domain.BlogRepository, storage upload.Storage) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, storage: storage}
}

func (uc *blogUsecase) Create(ctx context.Context, userID string, input domain.BlogCreate, image *domain.UploadFile) (*domain.Blog, error) {
	slug, err := ensureUniqueSlug(ctx, generateSlug(input.Title), func(ctx context.Context, s string) (bool, error) {
		return uc.blogRepo.SlugExists(ctx, s, "")
	})
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.BlogDraft
	}

	now := time.Now()
	blog := &domain.Blog{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Slug:       slug,
		Content:    input.Content,
		Summary:    input.Summary,
		Tags:       input.Tags,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if image != nil {
		result, err := uc.storage.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		blog.FeaturedImage = &result.URL
	}

	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		uc.removeImage(ctx, blog.FeaturedImage)
		return nil, err
	}
	return blog, nil
}

// List is the public listing; without an explicit status filter only published
// posts are returned.
func (uc *blogUsecase) List(ctx context.Context, filter domain.BlogFilter, opts domain.PageOptions) ([]domain.BlogWithRelations, *domain.PageMeta, error) {
	if filter.Status == nil {
		published := domain.BlogPublished
		filter.Status = &published
	}
	return uc.fetch(ctx, filter, opts)
}

func (uc *blogUsecase) ListOwn(ctx context.Context, userID string, filter domain.BlogFilter, opts domain.PageOptions) ([]domain.BlogWithRelations, *domain.PageMeta, error) {
	filter.UserID = userID
	return uc.fetch(ctx, filter, opts)
}

func (uc *blogUsecase) fetch(ctx context.Context, filter domain.BlogFilter, opts domain.PageOptions) ([]domain.BlogWithRelations, *domain.PageMeta, error) {
	page, limit, offset := opts.Normalize()
	blogs, total, err := uc.blogRepo.Fetch(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return blogs, &domain.PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (uc *blogUsecase) GetSingle(ctx context.Context, idOrSlug string) (*domain.BlogWithRelations, error) {
	return uc.blogRepo.GetByIDOrSlug(ctx, idOrSlug)
}

func (uc *blogUsecase) Update(ctx context.Context, idOrSlug, userID string, upd domain.BlogUpdate, image *domain.UploadFile) (*domain.Blog, error) {
	existing, err := uc.blogRepo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(existing.UserID, userID); err != nil {
		return nil, err
	}

	blog := existing.Blog
	if upd.Title != nil && *upd.Title != blog.Title {
		blog.Title = *upd.Title
		// Excluding the blog itself keeps re-saving the same title stable.
		slug, err := ensureUniqueSlug(ctx, generateSlug(blog.Title), func(ctx context.Context, s string) (bool, error) {
			return uc.blogRepo.SlugExists(ctx, s, blog.ID)
		})
		if err != nil {
			return nil, err
		}
		blog.Slug = slug
	}
	if upd.Content != nil {
		blog.Content = *upd.Content
	}
	if upd.Summary != nil {
		blog.Summary = upd.Summary
	}
	if upd.CategoryID != nil {
		blog.CategoryID = *upd.CategoryID
	}
	if upd.Tags != nil {
		blog.Tags = upd.Tags
	}
	if upd.Status != nil {
		blog.Status = *upd.Status
	}

	oldImage := blog.FeaturedImage
	if image != nil {
		result, err := uc.storage.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		blog.FeaturedImage = &result.URL
	}
	blog.UpdatedAt = time.Now()

	if err := uc.blogRepo.Update(ctx, &blog); err != nil {
		if image != nil {
			uc.removeImage(ctx, blog.FeaturedImage)
		}
		return nil, err
	}

	if image != nil {
		uc.removeImage(ctx, oldImage)
	}
	return &blog, nil
}

func (uc *blogUsecase) Delete(ctx context.Context, idOrSlug, userID string) error {
	existing, err := uc.blogRepo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	if err := requireOwner(existing.UserID, userID); err != nil {
		return err
	}

	if err := uc.blogRepo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	uc.removeImage(ctx, existing.FeaturedImage)
	return nil
}

func (uc *blogUsecase) removeImage(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	if err := uc.storage.Delete(ctx, uc.storage.KeyFromURL(*url)); err != nil {
		logger.Log.Warn("failed to delete blog image", "url", *url, "error", err)
	}
}

// --- Categories ---

func (uc *blogUsecase) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.BlogCategory, error) {
	slugs, err := uc.blogRepo.CategorySlugs(ctx, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.BlogCategory{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        uniqueSlugFromList(generateSlug(input.Name), slugs),
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.blogRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *blogUsecase) ListCategories(ctx context.Context) ([]domain.BlogCategory, error) {
	return uc.blogRepo.FetchCategories(ctx)
}

func (uc *blogUsecase) GetCategory(ctx context.Context, idOrSlug string) (*domain.BlogCategory, error) {
	return uc.blogRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
}

func (uc *blogUsecase) UpdateCategory(ctx context.Context, idOrSlug string, upd domain.CategoryUpdate) (*domain.BlogCategory, error) {
	category, err := uc.blogRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && *upd.Name != category.Name {
		category.Name = *upd.Name
		slugs, err := uc.blogRepo.CategorySlugs(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.Slug = uniqueSlugFromList(generateSlug(category.Name), slugs)
	}
	if upd.Description != nil {
		category.Description = upd.Description
	}
	category.UpdatedAt = time.Now()

	if err := uc.blogRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *blogUsecase) DeleteCategory(ctx context.Context, idOrSlug string) error {
	category, err := uc.blogRepo.GetCategoryByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}

	count, err := uc.blogRepo.CountBlogsInCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.BadRequest("Cannot delete category with existing blogs")
	}
	return uc.blogRepo.DeleteCategory(ctx, category.ID)
}
