package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type ExperienceHandler struct {
	expUC domain.ExperienceUsecase
}

// NewExperienceHandler registers work experience routes.
func NewExperienceHandler(public, protected *gin.RouterGroup, expUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{expUC: expUC}

	public.GET("/experiences", handler.List)
	public.GET("/experiences/:id", handler.GetSingle)
	protected.POST("/experiences", handler.Create)
	protected.PATCH("/experiences/:id", handler.Update)
	protected.DELETE("/experiences/:id", handler.Delete)
}

type experienceCreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description *string    `json:"description"`
}

type experienceUpdateRequest struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     *bool      `json:"current"`
	Description *string    `json:"description"`
}

// List godoc
// @Summary      List experiences of a profile
// @Tags         experiences
// @Produce      json
// @Param        profileId  query     string  true  "Profile id"
// @Success      200        {object}  response.Response
// @Router       /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.expUC.ListByProfile(c.Request.Context(), c.Query("profileId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences retrieved successfully", experiences)
}

// GetSingle godoc
// @Summary      Get an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [get]
func (h *ExperienceHandler) GetSingle(c *gin.Context) {
	exp, err := h.expUC.GetSingle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved successfully", exp)
}

// Create godoc
// @Summary      Add an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        body  body      experienceCreateRequest  true  "Experience data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experienceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	exp, err := h.expUC.Create(c.Request.Context(), currentUserID(c), domain.ExperienceCreate{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience created successfully", exp)
}

// Update godoc
// @Summary      Update an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Experience id"
// @Param        body  body      experienceUpdateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/{id} [patch]
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req experienceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	exp, err := h.expUC.Update(c.Request.Context(), c.Param("id"), currentUserID(c), domain.ExperienceUpdate{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated successfully", exp)
}

// Delete godoc
// @Summary      Delete an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.expUC.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted successfully", nil)
}
