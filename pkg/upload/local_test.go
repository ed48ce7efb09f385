package upload

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)))
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestLocalStorageUpload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads/blog-images")
	assert.NoError(t, err)

	result, err := storage.Upload(context.Background(), "photo.png", pngBytes(t, 40, 30))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "/uploads/blog-images/"))
	assert.True(t, strings.HasSuffix(result.Key, ".jpg"), "images are re-encoded to JPEG")

	stored := filepath.Join(storage.dir, result.Key)
	_, err = os.Stat(stored)
	assert.NoError(t, err)

	assert.Equal(t, result.Key, storage.KeyFromURL(result.URL))

	assert.NoError(t, storage.Delete(context.Background(), result.Key))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing key is a no-op
	assert.NoError(t, storage.Delete(context.Background(), result.Key))
}

func TestLocalStorageRejectsNonImage(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	assert.NoError(t, err)

	_, err = storage.Upload(context.Background(), "notes.png", []byte("definitely not pixels"))
	assert.Error(t, err)
}

// Every extension the validator accepts must have a registered decoder, or an
// upload would pass validation and then fail mid-pipeline. A truncated payload
// of a registered format errors on the data, not with image.ErrFormat.
func TestAcceptedFormatsHaveDecoders(t *testing.T) {
	magics := map[string][]byte{
		".jpg":  {0xff, 0xd8, 0xff, 0xe0},
		".png":  []byte("\x89PNG\r\n\x1a\n"),
		".webp": []byte("RIFF\x00\x00\x00\x00WEBPVP8L\x00\x00"),
	}
	for ext := range allowedExtensions {
		magic, ok := magics[ext]
		if !ok {
			continue // alias extensions (.jpeg) share a decoder
		}
		_, _, err := image.Decode(bytes.NewReader(magic))
		assert.NotErrorIs(t, err, image.ErrFormat, "no decoder registered for %s", ext)
	}
}

func TestValidateImageHeader(t *testing.T) {
	header := func(filename, contentType string, size int64) *multipart.FileHeader {
		h := textproto.MIMEHeader{}
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		return &multipart.FileHeader{Filename: filename, Header: h, Size: size}
	}

	assert.NoError(t, ValidateImageHeader(header("photo.webp", "image/webp", 1024)))
	assert.NoError(t, ValidateImageHeader(header("photo.jpg", "image/jpeg", 1024)))
	assert.Error(t, ValidateImageHeader(header("clip.gif", "image/gif", 1024)))
	assert.Error(t, ValidateImageHeader(header("doc.pdf", "application/pdf", 1024)))
	assert.Error(t, ValidateImageHeader(header("huge.png", "image/png", MaxFileSize+1)))
	assert.Error(t, ValidateImageHeader(header("fake.png", "text/plain", 1024)))
}
