package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type AboutHandler struct {
	aboutUC domain.AboutUsecase
}

// NewAboutHandler registers the about section and quote routes. The about
// section is readable publicly per profile; everything else operates on the
// caller's own section.
func NewAboutHandler(public, protected *gin.RouterGroup, aboutUC domain.AboutUsecase) {
	handler := &AboutHandler{aboutUC: aboutUC}

	public.GET("/about/:profileId", handler.GetByProfile)
	protected.POST("/about", handler.CreateOrUpdate)
	protected.PATCH("/about", handler.Update)

	quotes := protected.Group("/quotes")
	quotes.POST("", handler.CreateQuote)
	quotes.GET("", handler.ListQuotes)
	quotes.PATCH("/:id", handler.UpdateQuote)
	quotes.DELETE("/:id", handler.DeleteQuote)
}

type aboutUpsertRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type aboutUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type quoteCreateRequest struct {
	Text   string  `json:"text" binding:"required"`
	Author *string `json:"author"`
	Source *string `json:"source"`
}

type quoteUpdateRequest struct {
	Text   *string `json:"text"`
	Author *string `json:"author"`
	Source *string `json:"source"`
}

// GetByProfile godoc
// @Summary      Get the about section of a profile
// @Tags         about
// @Produce      json
// @Param        profileId  path      string  true  "Profile id"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /about/{profileId} [get]
func (h *AboutHandler) GetByProfile(c *gin.Context) {
	about, err := h.aboutUC.GetByProfile(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About section retrieved successfully", about)
}

// CreateOrUpdate godoc
// @Summary      Create or replace the own about section
// @Description  Upserts the caller's about section. A new image replaces and deletes the previous one.
// @Tags         about
// @Accept       multipart/form-data
// @Produce      json
// @Param        data  formData  string  true   "About payload as JSON"
// @Param        file  formData  file    false  "Section image"
// @Success      200   {object}  response.Response
// @Security     BearerAuth
// @Router       /about [post]
func (h *AboutHandler) CreateOrUpdate(c *gin.Context) {
	var req aboutUpsertRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	image, err := formImage(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	about, err := h.aboutUC.CreateOrUpdate(c.Request.Context(), currentUserID(c), domain.AboutUpsert{
		Title:   req.Title,
		Content: req.Content,
	}, image)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About section saved successfully", about)
}

// Update godoc
// @Summary      Update fields of the own about section
// @Tags         about
// @Accept       multipart/form-data
// @Produce      json
// @Param        data  formData  string  true   "Fields to update as JSON"
// @Param        file  formData  file    false  "New section image"
// @Success      200   {object}  response.Response
// @Security     BearerAuth
// @Router       /about [patch]
func (h *AboutHandler) Update(c *gin.Context) {
	var req aboutUpdateRequest
	if err := bindBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	image, err := formImage(c, "file")
	if err != nil {
		c.Error(err)
		return
	}

	about, err := h.aboutUC.Update(c.Request.Context(), currentUserID(c), domain.AboutUpdate{
		Title:   req.Title,
		Content: req.Content,
	}, image)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "About section updated successfully", about)
}

// CreateQuote godoc
// @Summary      Add a quote to the own about section
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteCreateRequest  true  "Quote data"
// @Success      201   {object}  response.Response
// @Security     BearerAuth
// @Router       /quotes [post]
func (h *AboutHandler) CreateQuote(c *gin.Context) {
	var req quoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	quote, err := h.aboutUC.CreateQuote(c.Request.Context(), currentUserID(c), domain.QuoteInput{
		Text:   req.Text,
		Author: req.Author,
		Source: req.Source,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Quote created successfully", quote)
}

// ListQuotes godoc
// @Summary      List the own quotes
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /quotes [get]
func (h *AboutHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.aboutUC.ListQuotes(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Quotes retrieved successfully", quotes)
}

// UpdateQuote godoc
// @Summary      Update a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Quote id"
// @Param        body  body      quoteUpdateRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /quotes/{id} [patch]
func (h *AboutHandler) UpdateQuote(c *gin.Context) {
	var req quoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	quote, err := h.aboutUC.UpdateQuote(c.Request.Context(), currentUserID(c), c.Param("id"), domain.QuoteUpdate{
		Text:   req.Text,
		Author: req.Author,
		Source: req.Source,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Quote updated successfully", quote)
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote id"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /quotes/{id} [delete]
func (h *AboutHandler) DeleteQuote(c *gin.Context) {
	if err := h.aboutUC.DeleteQuote(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Quote deleted successfully", nil)
}
