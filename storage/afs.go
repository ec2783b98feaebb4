package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"blog-admin/config"
)

// AFSStore keeps objects under a viant/afs base URL (file:// or mem://).
type AFSStore struct {
	fs            afs.Service
	baseURL       string
	publicBaseURL string
}

func NewAFSStore(baseURL, publicBaseURL string) *AFSStore {
	return &AFSStore{
		fs:            afs.New(),
		baseURL:       baseURL,
		publicBaseURL: publicBaseURL,
	}
}

func (s *AFSStore) objectURL(key string) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	return url.Join(s.baseURL, cleaned), nil
}

func (s *AFSStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	u, err := s.objectURL(key)
	if err != nil {
		return err
	}
	if err := s.fs.Upload(ctx, u, 0644, body); err != nil {
		return fmt.Errorf("afs upload %s: %w", key, err)
	}
	config.DebugWithFields("object stored", config.Fields{
		"key":          key,
		"size":         size,
		"content_type": contentType,
		"url":          u,
	})
	return nil
}

func (s *AFSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	u, err := s.objectURL(key)
	if err != nil {
		return nil, err
	}
	ok, err := s.fs.Exists(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("afs exists %s: %w", key, err)
	}
	if !ok {
		return nil, ErrObjectNotFound
	}
	rc, err := s.fs.OpenURL(ctx, u)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("afs open %s: %w", key, err)
	}
	return rc, nil
}

func (s *AFSStore) Delete(ctx context.Context, key string) error {
	u, err := s.objectURL(key)
	if err != nil {
		return err
	}
	ok, err := s.fs.Exists(ctx, u)
	if err != nil {
		return fmt.Errorf("afs exists %s: %w", key, err)
	}
	if !ok {
		return ErrObjectNotFound
	}
	return s.fs.Delete(ctx, u)
}

func (s *AFSStore) URL(key string) string {
	return joinURL(s.publicBaseURL, key)
}
