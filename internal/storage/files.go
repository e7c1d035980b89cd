package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 10 * 1024 * 1024 // 10 MB
	uploadsDir    = "./uploads"
	staticURLBase = "/static/uploads"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrInvalidMimeType = errors.New("file type is not allowed")
)

// allowedMimeTypes: proof-of-payment and room photos are images only.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// FileStore saves uploaded images on local disk under dated directories
// and hands back a public URL.
type FileStore struct {
	baseDir    string
	staticBase string
}

func NewFileStore(baseDir, staticBase string) *FileStore {
	if baseDir == "" {
		baseDir = uploadsDir
	}
	if staticBase == "" {
		staticBase = staticURLBase
	}
	return &FileStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *FileStore) BaseDir() string { return s.baseDir }

// Save writes the uploaded file under <baseDir>/<bucket>/YYYY/MM/DD/ with a
// uuid name and returns its public URL.
func (s *FileStore) Save(bucket string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type from the first 512 bytes; the client header lies.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := filepath.Join(bucket, fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day()))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := uuid.New().String() + ext

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	return s.staticBase + "/" + filepath.ToSlash(relPath), nil
}

func mimeToExt(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
