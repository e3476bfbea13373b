package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps uploaded receipt files at 5 MB.
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// Store writes uploaded files under a base directory and hands back URL
// paths that the static file route can serve.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "receipts"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// SaveReceipt validates and stores an uploaded payment receipt, returning
// the URL path it will be served from.
func (s *Store) SaveReceipt(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", fh.Size, MaxUploadSize)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q: only jpg, png and pdf receipts are accepted", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dstPath := filepath.Join(s.baseDir, "receipts", name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/uploads/receipts/" + name, nil
}

// BaseDir is the directory the /uploads static route should serve.
func (s *Store) BaseDir() string {
	return s.baseDir
}
