package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cedarbrook-wellness/content-service/internal/upload"
)

// LocalStore writes assets to category directories under a single
// uploads root and serves them under publicBase.
type LocalStore struct {
	root       string
	publicBase string
}

func NewLocalStore(root, publicBase string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads root: %w", err)
	}
	return &LocalStore{
		root:       root,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// GenerateFilename builds `${timestamp}-${suffix}${ext}`. Uniqueness
// within a directory is probabilistic, not guaranteed.
func GenerateFilename(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// ctxReader aborts a long copy once the request deadline passes.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// Save streams data to a temp file in the destination directory, then
// renames it into place. The rename keeps partially written files from
// ever being visible under a public path.
func (s *LocalStore) Save(ctx context.Context, category, originalFilename string, data io.Reader) (*Asset, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to create destination directory", err)
	}

	filename := GenerateFilename(originalFilename)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".tmp-%d-%s", time.Now().UnixNano(), filename))
	defer os.Remove(tmpPath)

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to create temp file", err)
	}

	buf := make([]byte, 1*1024*1024) // 1MB
	size, err := io.CopyBuffer(f, &ctxReader{ctx: ctx, r: data}, buf)
	closeErr := f.Close()
	if err != nil {
		if ctx.Err() != nil {
			return nil, upload.WrapError(upload.CodeUploadTimeout, "upload aborted before completion", ctx.Err())
		}
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to write payload", err)
	}
	if closeErr != nil {
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to flush payload", closeErr)
	}

	finalPath := filepath.Join(dir, filename)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to move payload into place", err)
	}

	return &Asset{
		Filename:   filename,
		PublicPath: fmt.Sprintf("%s/%s/%s", s.publicBase, category, filename),
		Size:       size,
	}, nil
}

// List returns the assets currently stored under one category. Temp
// spool files are skipped.
func (s *LocalStore) List(ctx context.Context, category string) ([]Asset, error) {
	dir := filepath.Join(s.root, category)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to read category directory", err)
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".tmp-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		assets = append(assets, Asset{
			Filename:   entry.Name(),
			PublicPath: fmt.Sprintf("%s/%s/%s", s.publicBase, category, entry.Name()),
			Size:       info.Size(),
		})
	}
	return assets, nil
}

// Delete removes one asset. Deleting a missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, category, filename string) error {
	// Reject anything that could climb out of the category directory.
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return upload.NewError(upload.CodeMissingRequiredField, "invalid filename")
	}
	err := os.Remove(filepath.Join(s.root, category, filename))
	if err != nil && !os.IsNotExist(err) {
		return upload.WrapError(upload.CodeIOFailure, "failed to delete asset", err)
	}
	return nil
}
