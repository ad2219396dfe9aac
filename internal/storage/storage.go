package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedType = errors.New("unsupported_type")
	ErrNotFound        = errors.New("not_found")
)

// Store persists uploaded assets and exposes them under a public URL.
type Store interface {
	// SaveImage decodes, downscales and stores the image; the returned
	// URL is what gets written into site settings or catalog rows.
	// Uploading the same name again overwrites the previous asset at
	// the same public URL.
	SaveImage(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, publicURL string) error
	// Dir is the directory served as static uploads.
	Dir() string
}

type localStore struct {
	dir     string
	baseURL string
	log     *zap.Logger
}

func NewLocal(dir, baseURL string, log *zap.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.Named("storage.local"),
	}, nil
}

func (s *localStore) Dir() string { return s.dir }

func (s *localStore) SaveImage(ctx context.Context, name string, r io.Reader) (string, error) {
	ext := normalizeExt(name)
	if ext == "" {
		return "", ErrUnsupportedType
	}

	encoded, err := processImage(r, ext)
	if err != nil {
		return "", err
	}

	base := slug.Make(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	if base == "" {
		base = uuid.NewString()
	}

	filename := fmt.Sprintf("%s%s", base, ext)
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", err
	}

	s.log.Info("image stored", zap.String("file", filename))
	return s.baseURL + "/" + filename, nil
}

func (s *localStore) Delete(ctx context.Context, publicURL string) error {
	filename := filepath.Base(strings.TrimSpace(publicURL))
	if filename == "" || filename == "." || filename == "/" {
		return ErrNotFound
	}

	path := filepath.Join(s.dir, filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func normalizeExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return ".jpg"
	case ".png":
		return ".png"
	default:
		return ""
	}
}
