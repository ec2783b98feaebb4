package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"blog-admin/config"
	"blog-admin/storage"
)

const DefaultMaxUploadBytes int64 = 5 << 20

// UploadResult describes a stored cover image.
type UploadResult struct {
	FileURL  string
	Key      string
	MimeType string
	Size     int64
}

// UploadService validates image uploads and writes them to the object store.
type UploadService struct {
	store    storage.ObjectStore
	maxBytes int64
	prefix   string
}

func NewUploadService(store storage.ObjectStore, maxBytes int64, prefix string) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{store: store, maxBytes: maxBytes, prefix: strings.Trim(prefix, "/")}
}

// MaxBytes is the largest accepted upload.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// UploadImage reads at most maxBytes from body, checks the content is an image
// and stores it under <prefix>/<uuid><ext>.
func (s *UploadService) UploadImage(ctx context.Context, filename string, body io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	mt := mimetype.Detect(data)
	if !IsImageMIME(mt) {
		config.WarnWithFields("rejected non-image upload", config.Fields{
			"filename":  filename,
			"mime_type": mt.String(),
		})
		return nil, ErrNotImage
	}

	ext := mt.Extension()
	if ext == "" {
		ext = strings.ToLower(path.Ext(filename))
	}
	key := uuid.NewString() + ext
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	size := int64(len(data))
	contentType := baseMIME(mt.String())
	if err := s.store.Put(ctx, key, bytes.NewReader(data), size, contentType); err != nil {
		return nil, err
	}

	config.InfoWithFields("image uploaded", config.Fields{
		"key":       key,
		"filename":  filename,
		"mime_type": contentType,
		"size":      humanize.Bytes(uint64(size)),
	})

	return &UploadResult{
		FileURL:  s.store.URL(key),
		Key:      key,
		MimeType: contentType,
		Size:     size,
	}, nil
}

// DiscardImage removes a cover this service stored earlier. URLs that point
// elsewhere (external images, other prefixes) are left alone.
func (s *UploadService) DiscardImage(ctx context.Context, fileURL string) error {
	key, ok := s.keyForURL(fileURL)
	if !ok {
		return nil
	}
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		return fmt.Errorf("delete image %s: %w", key, err)
	}
	config.InfoWithFields("image discarded", config.Fields{"key": key})
	return nil
}

// keyForURL maps a public URL back to an object key under the upload prefix.
func (s *UploadService) keyForURL(fileURL string) (string, bool) {
	base := s.store.URL("")
	if fileURL == "" || !strings.HasPrefix(fileURL, base) {
		return "", false
	}
	key, err := storage.CleanKey(strings.TrimPrefix(fileURL, base))
	if err != nil {
		return "", false
	}
	if s.prefix != "" && !strings.HasPrefix(key, s.prefix+"/") {
		return "", false
	}
	return key, true
}

// IsImageMIME reports whether the detected type is image/*.
func IsImageMIME(mt *mimetype.MIME) bool {
	return mt != nil && strings.HasPrefix(mt.String(), "image/")
}

func baseMIME(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
