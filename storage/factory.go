package storage

import (
	"context"
	"fmt"
	"strings"

	"blog-admin/config"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendS3     = "s3"
)

// New selects the object store for cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case BackendFile, "":
		base := cfg.BaseURL
		if base == "" {
			base = "file:///tmp/blog-admin/uploads"
		}
		return NewAFSStore(base, cfg.PublicBaseURL), nil
	case BackendMemory:
		base := cfg.BaseURL
		if !strings.HasPrefix(base, "mem://") {
			base = "mem://localhost/blog-admin/uploads"
		}
		return NewAFSStore(base, cfg.PublicBaseURL), nil
	case BackendS3:
		s, err := NewS3Store(cfg.S3, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
