package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService stores uploaded images on local disk under generated
// names and hands back their public URL paths.
type UploadService struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

func NewUploadService(dir string, maxSize int64) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{
		dir:       dir,
		urlPrefix: "/uploads/listings/",
		maxSize:   maxSize,
	}, nil
}

// SaveAll writes each file in input order and returns one URL per file.
// The first failure aborts the batch; files already written stay on disk
// (no rollback).
func (s *UploadService) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))

	for _, file := range files {
		url, err := s.saveOne(file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (s *UploadService) saveOne(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, file.Filename, file.Size)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}
