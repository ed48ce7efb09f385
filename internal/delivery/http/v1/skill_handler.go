package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

// NewSkillHandler registers skill and skill category routes.
func NewSkillHandler(public, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.List)
	public.GET("/skills/:id", handler.GetSingle)
	protected.POST("/skills", handler.Create)
	protected.PATCH("/skills/:id", handler.Update)
	protected.DELETE("/skills/:id", handler.Delete)

	public.GET("/skill-categories", handler.ListCategories)
	protected.POST("/skill-categories", handler.CreateCategory)
	protected.PATCH("/skill-categories/:id", handler.UpdateCategory)
	protected.DELETE("/skill-categories/:id", handler.DeleteCategory)
}

type skillCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency int    `json:"proficiency" binding:"gte=0,lte=100"`
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
}

type skillUpdateRequest struct {
	Name        *string `json:"name"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,gte=0,lte=100"`
	CategoryID  *string `json:"categoryId" binding:"omitempty,uuid"`
}

type skillCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List godoc
// @Summary      List skills
// @Description  All skills ordered by proficiency. ?profileId= narrows to one profile.
// @Tags         skills
// @Produce      json
// @Param        profileId  query     string  false  "Profile id"
// @Success      200        {object}  response.Response
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	var (
		skills []domain.Skill
		err    error
	)
	if profileID := c.Query("profileId"); profileID != "" {
		skills, err = h.skillUC.ListByProfile(c.Request.Context(), profileID)
	} else {
		skills, err = h.skillUC.List(c.Request.Context())
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved successfully", skills)
}

// GetSingle godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
func (h *SkillHandler) GetSingle(c *gin.Context) {
	skill, err := h.skillUC.GetSingle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill retrieved successfully", skill)
}

// Create godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      skillCreateRequest  true  "Skill data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req skillCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), currentUserID(c), domain.SkillCreate{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created successfully", skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Skill id"
// @Param        body  body      skillUpdateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /skills/{id} [patch]
func (h *SkillHandler) Update(c *gin.Context) {
	var req skillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), c.Param("id"), currentUserID(c), domain.SkillUpdate{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated successfully", skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted successfully", nil)
}

// --- Categories ---

// ListCategories godoc
// @Summary      List skill categories
// @Tags         skill-categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skill-categories [get]
func (h *SkillHandler) ListCategories(c *gin.Context) {
	categories, err := h.skillUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory godoc
// @Summary      Create a skill category
// @Tags         skill-categories
// @Accept       json
// @Produce      json
// @Param        body  body      skillCategoryRequest  true  "Category data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /skill-categories [post]
func (h *SkillHandler) CreateCategory(c *gin.Context) {
	var req skillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.skillUC.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary      Rename a skill category
// @Tags         skill-categories
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Category id"
// @Param        body  body      skillCategoryRequest  true  "New name"
// @Success      200   {object}  response.Response
// @Security     BearerAuth
// @Router       /skill-categories/{id} [patch]
func (h *SkillHandler) UpdateCategory(c *gin.Context) {
	var req skillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	category, err := h.skillUC.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary      Delete a skill category
// @Description  Fails while skills still reference the category.
// @Tags         skill-categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /skill-categories/{id} [delete]
func (h *SkillHandler) DeleteCategory(c *gin.Context) {
	if err := h.skillUC.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
