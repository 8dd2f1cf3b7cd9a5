// Package upload stores form attachments on local disk.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"estateadmin/internal/domain"
	"estateadmin/internal/domain/services"

	"github.com/google/uuid"
)

// Subdirectories per entity kind
const (
	SubDirProjects   = "projects"
	SubDirDevelopers = "developers"
)

// TokenFunc returns a fresh unique filename prefix
type TokenFunc func() string

// Config locates the upload root on disk and on the public URL space
type Config struct {
	Dir       string // e.g. "uploads"
	URLPrefix string // e.g. "/uploads"
}

// LocalStore writes uploads to <Dir>/<subDir>/<token>_<filename>
type LocalStore struct {
	dir       string
	urlPrefix string
	newToken  TokenFunc
	logger    *slog.Logger
}

// NewLocalStore creates a store that names files with random UUIDs
func NewLocalStore(cfg Config, logger *slog.Logger) *LocalStore {
	return NewLocalStoreWithTokens(cfg, uuid.NewString, logger)
}

// NewLocalStoreWithTokens creates a store with a custom token generator
func NewLocalStoreWithTokens(cfg Config, newToken TokenFunc, logger *slog.Logger) *LocalStore {
	prefix := "/" + strings.Trim(cfg.URLPrefix, "/")
	if prefix == "/" {
		prefix = "/" + strings.Trim(filepath.ToSlash(cfg.Dir), "/")
	}
	return &LocalStore{
		dir:       cfg.Dir,
		urlPrefix: prefix,
		newToken:  newToken,
		logger:    logger,
	}
}

// StoredName builds the on-disk filename for an upload.
// The original filename is kept verbatim after the token.
func StoredName(token, originalFilename string) string {
	return token + "_" + originalFilename
}

// Save copies file into subDir and returns its public path.
// Concurrent saves into the same subDir are safe: directory creation is
// idempotent and every call uses a new token.
func (s *LocalStore) Save(ctx context.Context, file *services.UploadedFile, subDir string) (string, error) {
	if file.IsEmpty() {
		return "", fmt.Errorf("%w: empty file", domain.ErrUpload)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	targetDir := filepath.Join(s.dir, subDir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", &domain.UploadError{Op: "mkdir", SubDir: subDir, Err: err}
	}

	name := StoredName(s.newToken(), file.Filename)
	dest := filepath.Join(targetDir, name)

	// O_EXCL: an existing file is never overwritten
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", &domain.UploadError{Op: "create", SubDir: subDir, Err: err}
	}

	written, copyErr := io.Copy(out, file.Content)
	closeErr := out.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(dest)
		return "", &domain.UploadError{Op: "copy", SubDir: subDir, Err: err}
	}

	publicPath := path.Join(s.urlPrefix, subDir, name)

	s.logger.Info("upload stored",
		"sub_dir", subDir,
		"file", name,
		"bytes", written,
	)

	return publicPath, nil
}
