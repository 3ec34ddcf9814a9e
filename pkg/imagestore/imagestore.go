package imagestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Image is a stored menu picture: URL for clients, ID for later release.
type Image struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// Store hosts menu item images. Destroy is best-effort; callers log
// failures and carry on.
type Store interface {
	Upload(data []byte, contentType string) (*Image, error)
	Destroy(id string) error
}

// DiskStore keeps images under a local directory served as /uploads.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Upload(data []byte, contentType string) (*Image, error) {
	ext := extFor(contentType)
	id := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.Dir, id), data, 0o644); err != nil {
		return nil, err
	}
	return &Image{URL: fmt.Sprintf("%s/%s", s.BaseURL, id), ID: id}, nil
}

func (s *DiskStore) Destroy(id string) error {
	if id == "" {
		return nil
	}
	// reject path escapes
	if filepath.Base(id) != id {
		return fmt.Errorf("invalid image id: %s", id)
	}
	return os.Remove(filepath.Join(s.Dir, id))
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
