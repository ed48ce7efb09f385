package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

// NewBlogHandler registers blog and blog category routes. Reads are public,
// every mutation requires auth.
func NewBlogHandler(public, protected *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	public.GET("/blogs", handler.List)
	public.GET("/blogs/:idOrSlug", handler.GetSingle)
	protected.POST("/blogs", handler.Create)
	protected.PATCH("/blogs/:idOrSlug", handler.Update)
	protected.DELETE("/blogs/:idOrSlug", handler.Delete)

	public.GET("/blog-categories", handler.ListCategories)
	public.GET("/blog-categories/:idOrSlug", handler.GetCategory)
	protected.POST("/blog-categories", handler.CreateCategory)
	protected.PATCH("/blog-categories/:idOrSlug", handler.UpdateCategory)
	protected.DELETE("/blog-categories/:idOrSlug", handler.DeleteCategory)
}

type blogCreateRequest struct {
	Title      string            `json:"title" binding:"required"`
	Content    string            `json:"content" binding:"required"`
	Summary    *string           `json:"summary"`
	CategoryID string            `json:"categoryId" binding:"required,uuid"`
	Tags       []string          `json:"tags"`
	Status     domain.BlogStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type blogUpdateRequest struct {
	Title      *string            `json:"title"`
	Content    *string            `json:"content"`
	Summary    *string            `json:"summary"`
	CategoryID *string            `json:"categoryId" binding:"omitempty,uuid"`
	Tags       []string           `json:"tags"`
	Status     *domain.BlogStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type categoryCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type categoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func blogFilterFromQuery(c *gin.Context) domain.BlogFilter {
	filter := domain.BlogFilter{
		SearchTerm: c.Query("searchTerm"),
		CategoryID: c.Query("category"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.BlogStatus(s)
		filter.Status = &status
	}
	return filter
}

// List godoc
// @Summary      List blogs
// @Description  Public listing; only published posts unless a status filter is given.
// @Tags         blogs
// @Produce      json
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Param        searchTerm  query     string  false  "Search in title, content, tags"
// @Param        category    query     string  false  "Category id"
// @Param        status      query     string  false  "DRAFT, PUBLISHED or ARCHIVED"
// @Success      200  {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	blogs, meta, err := h.blogUC.List(c.Request.Context(), blogFilterFromQuery(c), pageOptions(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Blogs retrieved successfully", blogs, meta)
}

// GetSingle godoc
// @Summary      Get a blog by id or slug
// @Tags         blogs
// @Produce      json
// @Param        idOrSlug  path      string  true  "Blog id or slug"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /blogs/{idOrSlug} [get]
func (h *BlogHandler) GetSingle(c *gin.Context) {
	blog, err := h.blogUC.GetSingle(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blog retrieved successfully", blog)
}

// Create godoc
// @Summary      Create a blog
// @Description  Accepts JSON, or multipart with a "data" JSON field plus an optional "file" featured image.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        data  formData  string  true   "Blog payload as JSON"
// @Param        file  formData  file    false  "Featured image"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req blogCreateRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	image, err := formImage(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	blog, err := h.blogUC.Create(c.Request.Context(), currentUserID(c), domain.BlogCreate{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Status:     req.Status,
	}, image)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Blog created successfully", blog)
}

// Update godoc
// @Summary      Update a blog
// @Description  Only the author can update. A changed title regenerates the slug.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        idOrSlug  path      string  true   "Blog id or slug"
// @Param        data      formData  string  true   "Fields to update as JSON"
// @Param        file      formData  file    false  "New featured image"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs/{idOrSlug} [patch]
func (h *BlogHandler) Update(c *gin.Context) {
	var req blogUpdateRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	image, err := formImage(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	blog, err := h.blogUC.Update(c.Request.Context(), c.Param("idOrSlug"), currentUserID(c), domain.BlogUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		Status:     req.Status,
	}, image)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blog updated successfully", blog)
}

// Delete godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Param        idOrSlug  path      string  true  "Blog id or slug"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs/{idOrSlug} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogUC.Delete(c.Request.Context(), c.Param("idOrSlug"), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Blog deleted successfully", nil)
}

// --- Categories ---

// ListCategories godoc
// @Summary      List blog categories
// @Tags         blog-categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /blog-categories [get]
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategory godoc
// @Summary      Get a blog category by id or slug
// @Tags         blog-categories
// @Produce      json
// @Param        idOrSlug  path      string  true  "Category id or slug"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /blog-categories/{idOrSlug} [get]
func (h *BlogHandler) GetCategory(c *gin.Context) {
	category, err := h.blogUC.GetCategory(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory godoc
// @Summary      Create a blog category
// @Tags         blog-categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryCreateRequest  true  "Category data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /blog-categories [post]
func (h *BlogHandler) CreateCategory(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.blogUC.CreateCategory(c.Request.Context(), domain.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary      Update a blog category
// @Tags         blog-categories
// @Accept       json
// @Produce      json
// @Param        idOrSlug  path      string                 true  "Category id or slug"
// @Param        body      body      categoryUpdateRequest  true  "Fields to update"
// @Success      200       {object}  response.Response
// @Security     BearerAuth
// @Router       /blog-categories/{idOrSlug} [patch]
func (h *BlogHandler) UpdateCategory(c *gin.Context) {
	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.blogUC.UpdateCategory(c.Request.Context(), c.Param("idOrSlug"), domain.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary      Delete a blog category
// @Description  Fails while blogs still reference the category.
// @Tags         blog-categories
// @Produce      json
// @Param        idOrSlug  path      string  true  "Category id or slug"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Security     BearerAuth
// @Router       /blog-categories/{idOrSlug} [delete]
func (h *BlogHandler) DeleteCategory(c *gin.Context) {
	if err := h.blogUC.DeleteCategory(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
