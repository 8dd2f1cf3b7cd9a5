package services

import (
	"context"
	"io"
)

// UploadedFile is a file attached to a create or update form
type UploadedFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// IsEmpty reports whether no usable file was submitted
func (f *UploadedFile) IsEmpty() bool {
	return f == nil || f.Content == nil || f.Filename == "" || f.Size == 0
}

// FileStore persists uploaded files and returns the public path to reference them by
type FileStore interface {
	Save(ctx context.Context, file *UploadedFile, subDir string) (string, error)
}
