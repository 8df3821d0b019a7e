package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markeugine/atelier-backend/internal/config"
)

type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(cfg *config.Config) *LocalStore {
	return &LocalStore{
		dir:     cfg.MediaDir,
		baseURL: cfg.MediaBaseURL,
	}
}

func (s *LocalStore) Save(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	dir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, folder, filename), nil
}

var _ Store = (*LocalStore)(nil)
