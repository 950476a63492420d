// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
)

const maxDuplicateSuffix = 1000

// LocalFileStorage is the local filesystem implementation of
// [CarrierFileStorage] and [DownloadFileStorage].
type LocalFileStorage struct {
	downloadDir string
	logger      *logger.Logger
}

// NewLocalFileStorage constructs a filesystem storage saving downloads into
// downloadDir. The directory is created on the first save.
func NewLocalFileStorage(downloadDir string, logger *logger.Logger) *LocalFileStorage {
	return &LocalFileStorage{downloadDir: downloadDir, logger: logger}
}

// Stat implements [CarrierFileStorage].
func (s *LocalFileStorage) Stat(path string) (models.SelectedFile, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return models.SelectedFile{}, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("stat %s: %w", resolved, err)
	}
	if !info.Mode().IsRegular() {
		return models.SelectedFile{}, fmt.Errorf("%w: %s", ErrNotRegularFile, resolved)
	}

	return models.SelectedFile{
		Path: resolved,
		Name: info.Name(),
		Size: info.Size(),
	}, nil
}

// Open implements [CarrierFileStorage].
func (s *LocalFileStorage) Open(ctx context.Context, file models.SelectedFile) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open carrier file: %w", err)
	}
	return f, nil
}

// Save implements [DownloadFileStorage]. The content is written to a
// temporary file first and renamed into place, so a partially written
// download never appears under its final name.
func (s *LocalFileStorage) Save(ctx context.Context, file models.DownloadedFile) (models.SavedFile, error) {
	if err := ctx.Err(); err != nil {
		return models.SavedFile{}, err
	}

	name := sanitizeFileName(file.Name)
	if name == "" {
		return models.SavedFile{}, ErrEmptyFileName
	}

	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return models.SavedFile{}, fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.downloadDir, ".download-*")
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(file.Content); err != nil {
		tmp.Close()
		return models.SavedFile{}, fmt.Errorf("write download: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return models.SavedFile{}, fmt.Errorf("close download: %w", err)
	}

	target, err := s.freePath(name)
	if err != nil {
		return models.SavedFile{}, err
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return models.SavedFile{}, fmt.Errorf("move download into place: %w", err)
	}

	s.logger.Info().
		Str("path", target).
		Int("bytes", len(file.Content)).
		Msg("download saved")

	return models.SavedFile{Path: target, Size: int64(len(file.Content))}, nil
}

// freePath returns the first path in the download directory that does not
// exist yet: "name.ext", "name (1).ext", "name (2).ext" ...
func (s *LocalFileStorage) freePath(name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxDuplicateSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = stem + " (" + strconv.Itoa(i) + ")" + ext
		}

		path := filepath.Join(s.downloadDir, candidate)
		_, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("check %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTooManyDuplicates, name)
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}

	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." || base == ".." {
		return ""
	}
	return base
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotRegularFile)
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}
