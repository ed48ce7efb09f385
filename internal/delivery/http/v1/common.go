package v1

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/upload"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// pageOptions parses ?page= and ?limit= with the usual defaults.
func pageOptions(c *gin.Context) domain.PageOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return domain.PageOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}

// bindBody normalizes the two payload shapes the frontend sends: plain JSON
// bodies, and multipart forms carrying the JSON payload in a "data" field next
// to the files. Either way dst ends up validated against its binding tags.
func bindBody(c *gin.Context, dst any) error {
	ct := c.ContentType()
	if !strings.HasPrefix(ct, "multipart/") {
		return c.ShouldBindJSON(dst)
	}

	raw := c.PostForm("data")
	if raw == "" {
		return apperror.BadRequest("Missing data field in multipart form")
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return apperror.BadRequest("Invalid JSON in data field")
	}
	return binding.Validator.ValidateStruct(dst)
}

func readUpload(fh *multipart.FileHeader) (*domain.UploadFile, error) {
	if err := upload.ValidateImageHeader(fh); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.UploadFile{Filename: fh.Filename, Content: content}, nil
}

// formImage returns the named file when present, nil when the field is absent.
func formImage(c *gin.Context, field string) (*domain.UploadFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperror.BadRequest(err.Error())
	}
	return readUpload(fh)
}

// formImages collects every file under the named multipart field.
func formImages(c *gin.Context, field string) ([]domain.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperror.BadRequest(err.Error())
	}

	var files []domain.UploadFile
	for _, fh := range form.File[field] {
		f, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}
