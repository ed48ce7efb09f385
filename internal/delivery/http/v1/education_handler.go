package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type EducationHandler struct {
	eduUC domain.EducationUsecase
}

// NewEducationHandler registers education history routes.
func NewEducationHandler(public, protected *gin.RouterGroup, eduUC domain.EducationUsecase) {
	handler := &EducationHandler{eduUC: eduUC}

	public.GET("/educations", handler.List)
	public.GET("/educations/:id", handler.GetSingle)
	protected.POST("/educations", handler.Create)
	protected.PATCH("/educations/:id", handler.Update)
	protected.DELETE("/educations/:id", handler.Delete)
}

type educationCreateRequest struct {
	Institution  string     `json:"institution" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy *string    `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description"`
}

type educationUpdateRequest struct {
	Institution  *string    `json:"institution"`
	Degree       *string    `json:"degree"`
	FieldOfStudy *string    `json:"fieldOfStudy"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Current      *bool      `json:"current"`
	Description  *string    `json:"description"`
}

// List godoc
// @Summary      List educations of a profile
// @Tags         educations
// @Produce      json
// @Param        profileId  query     string  true  "Profile id"
// @Success      200        {object}  response.Response
// @Router       /educations [get]
func (h *EducationHandler) List(c *gin.Context) {
	educations, err := h.eduUC.ListByProfile(c.Request.Context(), c.Query("profileId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Educations retrieved successfully", educations)
}

// GetSingle godoc
// @Summary      Get an education entry
// @Tags         educations
// @Produce      json
// @Param        id   path      string  true  "Education id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /educations/{id} [get]
func (h *EducationHandler) GetSingle(c *gin.Context) {
	edu, err := h.eduUC.GetSingle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved successfully", edu)
}

// Create godoc
// @Summary      Add an education entry
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        body  body      educationCreateRequest  true  "Education data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /educations [post]
func (h *EducationHandler) Create(c *gin.Context) {
	var req educationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	edu, err := h.eduUC.Create(c.Request.Context(), currentUserID(c), domain.EducationCreate{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education created successfully", edu)
}

// Update godoc
// @Summary      Update an education entry
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Education id"
// @Param        body  body      educationUpdateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /educations/{id} [patch]
func (h *EducationHandler) Update(c *gin.Context) {
	var req educationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	edu, err := h.eduUC.Update(c.Request.Context(), c.Param("id"), currentUserID(c), domain.EducationUpdate{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated successfully", edu)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         educations
// @Produce      json
// @Param        id   path      string  true  "Education id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /educations/{id} [delete]
func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.eduUC.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted successfully", nil)
}
