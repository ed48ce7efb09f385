package upload

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxFileSize caps image uploads at 5MB.
const MaxFileSize = 5 * 1024 * 1024

var ErrInvalidFileType = errors.New("only image files (jpg, jpeg, png, webp) are allowed")

// UploadResult describes a stored object.
type UploadResult struct {
	URL string `json:"url"`
	// Key identifies the object for later deletion (S3 key or local filename).
	Key string `json:"publicId"`
}

// Storage abstracts where uploaded files live. S3Storage pushes to an object
// store; LocalStorage optimizes and writes under the uploads directory.
type Storage interface {
	Upload(ctx context.Context, filename string, content []byte) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL recovers the deletion key from a public URL previously
	// returned by Upload.
	KeyFromURL(url string) string
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImageHeader rejects non-image and oversized multipart files before
// any bytes are read.
func ValidateImageHeader(fh *multipart.FileHeader) error {
	if fh.Size > MaxFileSize {
		return errors.New("file exceeds the 5MB size limit")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return ErrInvalidFileType
	}
	ct := fh.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return ErrInvalidFileType
	}
	return nil
}

// lastSegment extracts the final path segment of a URL.
func lastSegment(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return url
	}
	return url[idx+1:]
}
