package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"visionvault_backend/internal/config"
	"visionvault_backend/internal/imageprocessor"
	"visionvault_backend/internal/logger"
	"visionvault_backend/internal/storage"
	"visionvault_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadService moves multipart file uploads into the configured
// storage backend under generated names.
type UploadService interface {
	Store(ctx context.Context, fh *multipart.FileHeader) (string, error)
	StoreAll(ctx context.Context, fhs []*multipart.FileHeader) ([]string, error)

	// Remove deletes a stored file best-effort. Failures are logged,
	// never returned: file cleanup must not fail the request that
	// triggered it.
	Remove(ctx context.Context, name string)
}

type uploadService struct {
	store  storage.Storage
	thumbs *imageprocessor.Processor
}

func NewUploadService(store storage.Storage) UploadService {
	return &uploadService{
		store:  store,
		thumbs: imageprocessor.New(85),
	}
}

func (s *uploadService) Store(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if cfg.Upload.MaxSize > 0 && fh.Size > cfg.Upload.MaxSize {
		return "", apperrors.ValidationError(
			fmt.Sprintf("file %s exceeds the maximum size of %d bytes", fh.Filename, cfg.Upload.MaxSize))
	}

	contentType := fh.Header.Get("Content-Type")
	if len(cfg.Upload.AllowedTypes) > 0 && !allowedType(cfg.Upload.AllowedTypes, contentType) {
		return "", apperrors.ValidationError(
			fmt.Sprintf("file type %s is not allowed", contentType))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := s.store.Save(ctx, name, src, contentType); err != nil {
		return "", err
	}

	s.storeThumbnail(ctx, fh, name, contentType)

	return name, nil
}

// storeThumbnail writes a downsized variant next to the original.
// Undecodable payloads are skipped: the original is already stored and
// thumbnails are a convenience, not a contract.
func (s *uploadService) storeThumbnail(ctx context.Context, fh *multipart.FileHeader, name, contentType string) {
	src, err := fh.Open()
	if err != nil {
		logger.CtxWithError(ctx, "failed to reopen upload for thumbnail", err, "file", name)
		return
	}
	defer src.Close()

	thumb, err := s.thumbs.Thumbnail(src)
	if err != nil {
		logger.CtxDebug(ctx, "skipping thumbnail", "file", name, "reason", err.Error())
		return
	}

	if err := s.store.Save(ctx, thumbName(name), thumb, contentType); err != nil {
		logger.CtxWithError(ctx, "failed to store thumbnail", err, "file", name)
	}
}

func thumbName(name string) string {
	return "thumb_" + name
}

func (s *uploadService) StoreAll(ctx context.Context, fhs []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		name, err := s.Store(ctx, fh)
		if err != nil {
			// Roll back files already written for this request.
			for _, stored := range names {
				s.Remove(ctx, stored)
			}
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *uploadService) Remove(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.store.Delete(ctx, name); err != nil {
		logger.CtxWithError(ctx, "failed to delete stored file", err, "file", name)
	}
	if err := s.store.Delete(ctx, thumbName(name)); err != nil {
		logger.CtxWithError(ctx, "failed to delete thumbnail", err, "file", name)
	}
}

func allowedType(allowed []string, contentType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
