package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. Submitting is public;
// reading, deleting and exporting are admin operations.
func NewContactHandler(public, admin *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contacts", handler.Submit)
	admin.GET("/contacts", handler.List)
	admin.DELETE("/contacts/:id", handler.Delete)
	admin.GET("/contacts/export", handler.Export)
}

type contactRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Subject   string  `json:"subject" binding:"required"`
	Message   string  `json:"message" binding:"required"`
	ProfileID *string `json:"profileId" binding:"omitempty,uuid"`
}

// Submit godoc
// @Summary      Submit the contact form
// @Description  Stores the inquiry and notifies the site owner by email.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	contact, err := h.contactUC.Submit(c.Request.Context(), domain.ContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		ProfileID: req.ProfileID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", contact)
}

// List godoc
// @Summary      List contact submissions
// @Tags         contacts
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, meta, err := h.contactUC.List(c.Request.Context(), pageOptions(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Contacts retrieved successfully", contacts, meta)
}

// Delete godoc
// @Summary      Delete a contact submission
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact deleted successfully", nil)
}

// Export godoc
// @Summary      Export contact submissions as XLSX
// @Tags         contacts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /contacts/export [get]
func (h *ContactHandler) Export(c *gin.Context) {
	data, err := h.contactUC.ExportXLSX(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
