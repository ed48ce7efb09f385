package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.BlogWithRelations, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogWithRelations), args.Error(1)
}

func (m *MockBlogRepo) Fetch(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogWithRelations, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.BlogWithRelations), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepo) Update(ctx context.Context, blog *domain.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepo) CreateCategory(ctx context.Context, category *domain.BlogCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockBlogRepo) FetchCategories(ctx context.Context) ([]domain.BlogCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogCategory), args.Error(1)
}

func (m *MockBlogRepo) GetCategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.BlogCategory, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogCategory), args.Error(1)
}

func (m *MockBlogRepo) UpdateCategory(ctx context.Context, category *domain.BlogCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockBlogRepo) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) CategorySlugs(ctx context.Context, excludeID string) ([]string, error) {
	args := m.Called(ctx, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogRepo) CountBlogsInCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, filename string, content []byte) (*upload.UploadResult, error) {
	args := m.Called(ctx, filename, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upload.UploadResult), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) KeyFromURL(url string) string {
	return m.Called(url).String(0)
}

func existingBlog() *domain.BlogWithRelations {
	return &domain.BlogWithRelations{
		Blog: domain.Blog{
			ID:         "blog-1",
			UserID:     "owner-1",
			CategoryID: "cat-1",
			Title:      "Hello World!",
			Slug:       "hello-world",
			Content:    "body",
			Status:     domain.BlogPublished,
		},
	}
}

func TestBlogCreateSlug(t *testing.T) {
	t.Run("Should slugify the title", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("SlugExists", mock.Anything, "hello-world", "").Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

		blog, err := uc.Create(context.Background(), "owner-1", domain.BlogCreate{
			Title:      "Hello World!",
			Content:    "body",
			CategoryID: "cat-1",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", blog.Slug)
		assert.Equal(t, domain.BlogDraft, blog.Status, "status defaults to draft")
	})

	t.Run("Should append a suffix when the slug is taken", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("SlugExists", mock.Anything, "hello-world", "").Return(true, nil)
		mockRepo.On("SlugExists", mock.Anything, "hello-world-1", "").Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

		blog, err := uc.Create(context.Background(), "owner-1", domain.BlogCreate{
			Title:      "Hello World!",
			Content:    "body",
			CategoryID: "cat-1",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, "hello-world-1", blog.Slug)
	})
}

func TestBlogUpdateOwnership(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	mockRepo.On("GetByIDOrSlug", mock.Anything, "blog-1").Return(existingBlog(), nil)

	newTitle := "Stolen"
	_, err := uc.Update(context.Background(), "blog-1", "intruder-9", domain.BlogUpdate{Title: &newTitle}, nil)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBlogUpdateSlug(t *testing.T) {
	t.Run("Re-saving the same title keeps the slug without probing", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("GetByIDOrSlug", mock.Anything, "blog-1").Return(existingBlog(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

		sameTitle := "Hello World!"
		blog, err := uc.Update(context.Background(), "blog-1", "owner-1", domain.BlogUpdate{Title: &sameTitle}, nil)
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", blog.Slug)
		mockRepo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("A new title probes slugs excluding the blog itself", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("GetByIDOrSlug", mock.Anything, "blog-1").Return(existingBlog(), nil)
		mockRepo.On("SlugExists", mock.Anything, "fresh-title", "blog-1").Return(false, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil)

		newTitle := "Fresh Title"
		blog, err := uc.Update(context.Background(), "blog-1", "owner-1", domain.BlogUpdate{Title: &newTitle}, nil)
		assert.NoError(t, err)
		assert.Equal(t, "fresh-title", blog.Slug)
	})
}

func TestBlogDeleteOwnership(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	mockRepo.On("GetByIDOrSlug", mock.Anything, "blog-1").Return(existingBlog(), nil)

	err := uc.Delete(context.Background(), "blog-1", "intruder-9")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Code)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBlogListPagination(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	pageTwo := make([]domain.BlogWithRelations, 10)
	mockRepo.On("Fetch", mock.Anything, mock.AnythingOfType("domain.BlogFilter"), 10, 10).
		Return(pageTwo, int64(25), nil)

	blogs, meta, err := uc.List(context.Background(), domain.BlogFilter{}, domain.PageOptions{Page: 2, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, blogs, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
}

func TestBlogListDefaultsToPublished(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	mockRepo.On("Fetch", mock.Anything, mock.MatchedBy(func(f domain.BlogFilter) bool {
		return f.Status != nil && *f.Status == domain.BlogPublished
	}), 10, 0).Return([]domain.BlogWithRelations{}, int64(0), nil)

	_, _, err := uc.List(context.Background(), domain.BlogFilter{}, domain.PageOptions{})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestBlogListOwnScopesToUser(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	mockRepo.On("Fetch", mock.Anything, mock.MatchedBy(func(f domain.BlogFilter) bool {
		return f.UserID == "owner-1" && f.Status == nil
	}), 10, 0).Return([]domain.BlogWithRelations{}, int64(0), nil)

	_, _, err := uc.ListOwn(context.Background(), "owner-1", domain.BlogFilter{}, domain.PageOptions{})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestBlogCategoryDelete(t *testing.T) {
	category := &domain.BlogCategory{ID: "cat-1", Name: "Go", Slug: "go"}

	t.Run("Should refuse when blogs still reference the category", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("GetCategoryByIDOrSlug", mock.Anything, "go").Return(category, nil)
		mockRepo.On("CountBlogsInCategory", mock.Anything, "cat-1").Return(int64(3), nil)

		err := uc.DeleteCategory(context.Background(), "go")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Cannot delete category with existing blogs", appErr.Message)
		mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("Should delete an empty category", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

		mockRepo.On("GetCategoryByIDOrSlug", mock.Anything, "go").Return(category, nil)
		mockRepo.On("CountBlogsInCategory", mock.Anything, "cat-1").Return(int64(0), nil)
		mockRepo.On("DeleteCategory", mock.Anything, "cat-1").Return(nil)

		err := uc.DeleteCategory(context.Background(), "go")
		assert.NoError(t, err)
	})
}

func TestBlogCategoryCreateSlug(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	uc := usecase.NewBlogUsecase(mockRepo, new(MockStorage))

	mockRepo.On("CategorySlugs", mock.Anything, "").Return([]string{"go"}, nil)
	mockRepo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*domain.BlogCategory")).Return(nil)

	category, err := uc.CreateCategory(context.Background(), domain.CategoryInput{Name: "Go"})
	assert.NoError(t, err)
	assert.Equal(t, "go-1", category.Slug)
}
