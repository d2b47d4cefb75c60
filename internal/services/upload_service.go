package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/imageprocessor"
	"apnajourney_backend/internal/logger"
	"apnajourney_backend/internal/storage"
)

// allowedUploadExts whitelists what users may upload: resumes and
// article images.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadResult struct {
	Path         string `json:"path"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type UploadService interface {
	Upload(ctx context.Context, ownerID, filename string, size int64, reader io.Reader) (*UploadResult, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

type UploadServiceImpl struct {
	store     storage.Storage
	processor *imageprocessor.Processor
	maxSize   int64
}

func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &UploadServiceImpl{
		store:     store,
		processor: imageprocessor.NewProcessor(85),
		maxSize:   maxSize,
	}
}

// Upload stores a file under a generated name so an uploaded filename
// can never collide with or overwrite another user's file. Images also
// get a downscaled thumbnail for listing pages.
func (s *UploadServiceImpl) Upload(ctx context.Context, ownerID, filename string, size int64, reader io.Reader) (*UploadResult, error) {
	if size > s.maxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File exceeds the %d MB limit", s.maxSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExts[ext] {
		return nil, apperrors.NewBadRequestError("File type is not allowed")
	}

	data, err := io.ReadAll(io.LimitReader(reader, s.maxSize))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Images are stored capped at cover size: nothing on the site
	// renders larger, and a raw phone photo wastes disk and bandwidth.
	if imageprocessor.IsImageExt(ext) {
		capped, err := s.processor.Process(bytes.NewReader(data), imageprocessor.SizeCover, strings.TrimPrefix(ext, "."))
		if err != nil {
			return nil, apperrors.NewBadRequestError("File is not a valid image")
		}
		if data, err = io.ReadAll(capped); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	base := fmt.Sprintf("%s/%s", ownerID, uuid.NewString())
	path := base + ext
	if err := s.store.Save(ctx, path, bytes.NewReader(data)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &UploadResult{
		Path: path,
		URL:  s.store.GetURL(path),
	}

	if imageprocessor.IsImageExt(ext) {
		if thumbPath, err := s.saveThumbnail(ctx, base, ext, data); err != nil {
			// The original upload already succeeded; a failed thumbnail
			// only costs listing-page bandwidth.
			logger.WithError(err).Warn("thumbnail generation failed", "path", path)
		} else {
			result.ThumbnailURL = s.store.GetURL(thumbPath)
		}
	}

	return result, nil
}

func (s *UploadServiceImpl) saveThumbnail(ctx context.Context, base, ext string, data []byte) (string, error) {
	format := strings.TrimPrefix(ext, ".")
	thumb, err := s.processor.Process(bytes.NewReader(data), imageprocessor.SizeThumbnail, format)
	if err != nil {
		return "", err
	}

	thumbPath := base + "-thumb" + ext
	if err := s.store.Save(ctx, thumbPath, thumb); err != nil {
		return "", err
	}
	return thumbPath, nil
}

func (s *UploadServiceImpl) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, apperrors.NotFound("File")
	}
	return rc, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, path string) error {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NotFound("File")
	}
	if err := s.store.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
