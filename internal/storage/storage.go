package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/markeugine/atelier-backend/internal/config"
)

// Store persists uploaded images and hands back a public URL.
type Store interface {
	Save(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
}

// New picks the backend from config.
func New(cfg *config.Config) Store {
	if cfg.StorageBackend == "s3" {
		return NewS3Store(cfg)
	}
	return NewLocalStore(cfg)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

// UniqueName builds "<date>-<uuid>-<original>" so collisions are impossible
// and the original name stays greppable.
func UniqueName(original string) string {
	return fmt.Sprintf(
		"%s-%s-%s",
		time.Now().Format("20060102"),
		uuid.NewString(),
		sanitizeFilename(original),
	)
}

// SaveUpload reads a multipart file, re-encodes large rasters to webp, and
// stores the result under folder.
func SaveUpload(ctx context.Context, store Store, folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	name := UniqueName(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	if converted, ok := Reencode(data); ok {
		data = converted
		contentType = "image/webp"
		name += ".webp"
	}

	return store.Save(ctx, folder, name, contentType, data)
}
