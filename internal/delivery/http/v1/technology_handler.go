package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type TechnologyHandler struct {
	techUC domain.TechnologyUsecase
}

// NewTechnologyHandler registers the technology lookup routes.
func NewTechnologyHandler(public, protected *gin.RouterGroup, techUC domain.TechnologyUsecase) {
	handler := &TechnologyHandler{techUC: techUC}

	public.GET("/technologies", handler.List)
	protected.POST("/technologies", handler.Create)
	protected.DELETE("/technologies/:id", handler.Delete)

	public.GET("/technology-categories", handler.ListCategories)
	protected.DELETE("/technology-categories/:id", handler.DeleteCategory)
}

type technologyCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// List godoc
// @Summary      List technologies
// @Tags         technologies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /technologies [get]
func (h *TechnologyHandler) List(c *gin.Context) {
	techs, err := h.techUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Technologies retrieved successfully", techs)
}

// Create godoc
// @Summary      Create a technology
// @Description  Upserts the technology and its category; existing names are reused.
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Param        body  body      technologyCreateRequest  true  "Technology data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /technologies [post]
func (h *TechnologyHandler) Create(c *gin.Context) {
	var req technologyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	tech, err := h.techUC.Create(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Technology created successfully", tech)
}

// Delete godoc
// @Summary      Delete a technology
// @Tags         technologies
// @Produce      json
// @Param        id   path      string  true  "Technology id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /technologies/{id} [delete]
func (h *TechnologyHandler) Delete(c *gin.Context) {
	if err := h.techUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Technology deleted successfully", nil)
}

// ListCategories godoc
// @Summary      List technology categories
// @Tags         technology-categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /technology-categories [get]
func (h *TechnologyHandler) ListCategories(c *gin.Context) {
	categories, err := h.techUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// DeleteCategory godoc
// @Summary      Delete a technology category
// @Description  Fails while technologies still reference the category.
// @Tags         technology-categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /technology-categories/{id} [delete]
func (h *TechnologyHandler) DeleteCategory(c *gin.Context) {
	if err := h.techUC.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
