package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidPath   = errors.New("invalid file path")
	ErrFileTooLarge  = errors.New("file exceeds the size limit")
	ErrFileExtension = errors.New("file extension not allowed")
)

// FileStorage keeps uploaded files under a storage-relative key.
type FileStorage interface {
	// Save writes r under key and returns the stored key.
	Save(ctx context.Context, r io.Reader, key string) (string, error)

	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// UploadPolicy restricts what an upload may look like.
type UploadPolicy struct {
	MaxSize     int64
	AllowedExts []string
}

// CheckExt returns the lower-cased extension of filename when the policy allows it.
func (p UploadPolicy) CheckExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range p.AllowedExts {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", ErrFileExtension
}

// Limit wraps r so that reading past MaxSize fails with ErrFileTooLarge.
func (p UploadPolicy) Limit(r io.Reader) io.Reader {
	if p.MaxSize <= 0 {
		return r
	}
	return &limitedReader{r: r, remaining: p.MaxSize}
}

type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrFileTooLarge
	}
	// Read one byte past the limit to detect oversize input.
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrFileTooLarge
	}
	return n, err
}
