package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

// NewProjectHandler registers project and project category routes.
func NewProjectHandler(public, protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	public.GET("/projects", handler.List)
	public.GET("/projects/:id", handler.GetSingle)
	protected.POST("/projects", handler.Create)
	protected.PATCH("/projects/:id", handler.Update)
	protected.DELETE("/projects/:id", handler.Delete)

	public.GET("/project-categories", handler.ListCategories)
	public.GET("/project-categories/:idOrSlug", handler.GetCategory)
	protected.POST("/project-categories", handler.CreateCategory)
	protected.PATCH("/project-categories/:idOrSlug", handler.UpdateCategory)
	protected.DELETE("/project-categories/:idOrSlug", handler.DeleteCategory)
}

type projectCreateRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	CategoryID  string               `json:"categoryId" binding:"required,uuid"`
	Features    []string             `json:"features"`
	TechStack   *domain.TechStack    `json:"techStack"`
	LiveURL     *string              `json:"liveUrl" binding:"omitempty,url"`
	GithubURL   *string              `json:"githubUrl" binding:"omitempty,url"`
	Status      domain.ProjectStatus `json:"status" binding:"omitempty,oneof=ONGOING COMPLETED"`
}

type projectUpdateRequest struct {
	Title          *string               `json:"title"`
	Description    *string               `json:"description"`
	CategoryID     *string               `json:"categoryId" binding:"omitempty,uuid"`
	Features       []string              `json:"features"`
	TechStack      *domain.TechStack     `json:"techStack"`
	LiveURL        *string               `json:"liveUrl" binding:"omitempty,url"`
	GithubURL      *string               `json:"githubUrl" binding:"omitempty,url"`
	Status         *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=ONGOING COMPLETED"`
	ImagesToRemove []string              `json:"imagesToRemove"`
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Param        searchTerm  query     string  false  "Search in title and description"
// @Param        category    query     string  false  "Category id"
// @Param        status      query     string  false  "ONGOING or COMPLETED"
// @Success      200  {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	filter := domain.ProjectFilter{
		SearchTerm: c.Query("searchTerm"),
		CategoryID: c.Query("category"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.ProjectStatus(s)
		filter.Status = &status
	}

	projects, meta, err := h.projectUC.List(c.Request.Context(), filter, pageOptions(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Projects retrieved successfully", projects, meta)
}

// GetSingle godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetSingle(c *gin.Context) {
	project, err := h.projectUC.GetSingle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved successfully", project)
}

// Create godoc
// @Summary      Create a project
// @Description  Multipart with a "data" JSON field and up to several "images" files. The first image becomes the featured image.
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        data    formData  string  true   "Project payload as JSON"
// @Param        images  formData  file    false  "Project images"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectCreateRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	images, err := formImages(c, "images")
	if err != nil {
		c.Error(err)
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), currentUserID(c), domain.ProjectCreate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Features:    req.Features,
		TechStack:   req.TechStack,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Status:      req.Status,
	}, images)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created successfully", project)
}

// Update godoc
// @Summary      Update a project
// @Description  Only the owner can update. imagesToRemove lists stored image URLs to drop; new "images" files are appended.
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true   "Project id"
// @Param        data    formData  string  true   "Fields to update as JSON"
// @Param        images  formData  file    false  "New project images"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectUpdateRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	images, err := formImages(c, "images")
	if err != nil {
		c.Error(err)
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), c.Param("id"), currentUserID(c), domain.ProjectUpdate{
		Title:          req.Title,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		Features:       req.Features,
		TechStack:      req.TechStack,
		LiveURL:        req.LiveURL,
		GithubURL:      req.GithubURL,
		Status:         req.Status,
		ImagesToRemove: req.ImagesToRemove,
	}, images)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated successfully", project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectUC.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}

// --- Categories ---

// ListCategories godoc
// @Summary      List project categories
// @Tags         project-categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /project-categories [get]
func (h *ProjectHandler) ListCategories(c *gin.Context) {
	categories, err := h.projectUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategory godoc
// @Summary      Get a project category by id or slug
// @Tags         project-categories
// @Produce      json
// @Param        idOrSlug  path      string  true  "Category id or slug"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /project-categories/{idOrSlug} [get]
func (h *ProjectHandler) GetCategory(c *gin.Context) {
	category, err := h.projectUC.GetCategory(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory godoc
// @Summary      Create a project category
// @Tags         project-categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryCreateRequest  true  "Category data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /project-categories [post]
func (h *ProjectHandler) CreateCategory(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.projectUC.CreateCategory(c.Request.Context(), domain.CategoryInput{
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
// @Summary      Update a project category
// @Tags         project-categories
// @Accept       json
// @Produce      json
// @Param        idOrSlug  path      string                 true  "Category id or slug"
// @Param        body      body      categoryUpdateRequest  true  "Fields to update"
// @Success      200       {object}  response.Response
// @Security     BearerAuth
// @Router       /project-categories/{idOrSlug} [patch]
func (h *ProjectHandler) UpdateCategory(c *gin.Context) {
	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.projectUC.UpdateCategory(c.Request.Context(), c.Param("idOrSlug"), domain.CategoryUpdate{
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
// @Summary      Delete a project category
// @Description  Fails while projects still reference the category.
// @Tags         project-categories
// @Produce      json
// @Param        idOrSlug  path      string  true  "Category id or slug"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Security     BearerAuth
// @Router       /project-categories/{idOrSlug} [delete]
func (h *ProjectHandler) DeleteCategory(c *gin.Context) {
	if err := h.projectUC.DeleteCategory(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
