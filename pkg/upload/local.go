package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	optimizedWidth   = 1200
	optimizedHeight  = 800
	optimizedQuality = 80
)

// LocalStorage resizes and re-encodes images to JPEG before writing them under
// the uploads directory. Used for blog featured images which are served
// directly by this process.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage ensures the target directory exists. baseURL is the public
// path the directory is mounted on, e.g. "/uploads/blog-images".
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

func (l *LocalStorage) Upload(_ context.Context, _ string, content []byte) (*UploadResult, error) {
	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	dst := resizeCover(src, optimizedWidth, optimizedHeight)

	filename := uuid.NewString() + ".jpg"
	path := filepath.Join(l.dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: optimizedQuality}); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &UploadResult{
		URL: l.baseURL + "/" + filename,
		Key: filename,
	}, nil
}

// KeyFromURL maps a served URL back to the stored filename.
func (l *LocalStorage) KeyFromURL(url string) string {
	return lastSegment(url)
}

func (l *LocalStorage) Delete(_ context.Context, key string) error {
	path := filepath.Join(l.dir, filepath.Base(key))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

// resizeCover scales the image to fill width x height, cropping the overflow
// around the center (cover fit).
func resizeCover(src image.Image, width, height int) *image.RGBA {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()

	// Scale so the shorter relative side fills the target
	scale := float64(width) / float64(srcW)
	if s := float64(height) / float64(srcH); s > scale {
		scale = s
	}

	scaledW := int(float64(srcW) * scale)
	scaledH := int(float64(srcH) * scale)

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, sb, draw.Over, nil)

	// Crop the center
	offsetX := (scaledW - width) / 2
	offsetY := (scaledH - height) / 2

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), scaled, image.Pt(offsetX, offsetY), draw.Src)
	return dst
}
