package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type UserHandler struct {
	userUC domain.UserUsecase
	blogUC domain.BlogUsecase
}

// NewUserHandler registers the /users/me routes, all of which require auth.
func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, blogUC domain.BlogUsecase) {
	handler := &UserHandler{userUC: userUC, blogUC: blogUC}

	me := protected.Group("/users/me")
	me.GET("", handler.GetProfile)
	me.PATCH("", handler.UpdateProfile)
	me.PATCH("/profile-image", handler.UpdateProfileImage)
	me.GET("/blogs", handler.ListOwnBlogs)
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileUpdate  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.userUC.UpdateProfile(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// UpdateProfileImage godoc
// @Summary      Update profile image
// @Description  Replaces the profile image; the previous object is deleted.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file (jpg, jpeg, png, webp; max 5MB)"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/profile-image [patch]
func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	file, err := formImage(c, "file")
	if err != nil {
		c.Error(err)
		return
	}
	if file == nil {
		c.Error(apperror.BadRequest("Profile image file is required"))
		return
	}

	profile, err := h.userUC.UpdateProfileImage(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile image updated successfully", profile)
}

// ListOwnBlogs godoc
// @Summary      List own blogs
// @Description  Returns the caller's blogs in every status, paginated.
// @Tags         users
// @Produce      json
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Param        searchTerm  query     string  false  "Search in title, content, tags"
// @Param        status      query     string  false  "DRAFT, PUBLISHED or ARCHIVED"
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/blogs [get]
func (h *UserHandler) ListOwnBlogs(c *gin.Context) {
	filter := blogFilterFromQuery(c)
	blogs, meta, err := h.blogUC.ListOwn(c.Request.Context(), currentUserID(c), filter, pageOptions(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Blogs retrieved successfully", blogs, meta)
}
