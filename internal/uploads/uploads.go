package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// PublicPrefix is the URL prefix the uploads directory is served under.
	PublicPrefix = "/uploads"

	// OwnerPortraitName is the single-slot owner photo. Every upload to the
	// owner-photo endpoint overwrites this exact file, last-writer-wins.
	OwnerPortraitName = "owner.jpg"

	// MaxGalleryFiles caps gallery uploads per create/edit request.
	MaxGalleryFiles = 10
)

// Store writes uploaded files into a single directory and hands back the
// public path strings that get persisted on car rows.
type Store struct {
	absBasePath string
	log         *zap.Logger
}

// NewStore creates the uploads directory if needed.
func NewStore(basePath string, log *zap.Logger) (*Store, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory '%s': %w", absPath, err)
	}

	return &Store{absBasePath: absPath, log: log}, nil
}

// BasePath returns the absolute uploads directory, for static serving.
func (s *Store) BasePath() string {
	return s.absBasePath
}

// Save writes one uploaded file under a collision-resistant generated name
// (current time plus a random suffix, original extension preserved) and
// returns its public path.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	name := generateName(file.Filename)
	if err := s.write(file, name); err != nil {
		return "", err
	}
	return PublicPrefix + "/" + name, nil
}

// SaveOwnerPortrait writes the uploaded file over the fixed owner-portrait
// slot and returns its public path. No collision avoidance on purpose.
func (s *Store) SaveOwnerPortrait(file *multipart.FileHeader) (string, error) {
	if err := s.write(file, OwnerPortraitName); err != nil {
		return "", err
	}
	return PublicPrefix + "/" + OwnerPortraitName, nil
}

// OwnerPortraitPath returns the public path of the owner portrait, or ""
// when none has been uploaded yet.
func (s *Store) OwnerPortraitPath() string {
	if _, err := os.Stat(filepath.Join(s.absBasePath, OwnerPortraitName)); err != nil {
		return ""
	}
	return PublicPrefix + "/" + OwnerPortraitName
}

// Remove deletes the file behind a stored public path, best-effort: every
// failure is logged and swallowed, the caller's request never fails on it.
func (s *Store) Remove(publicPath string) {
	if !strings.HasPrefix(publicPath, PublicPrefix+"/") {
		return
	}
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")
	if name == "" {
		return
	}
	if !isValidName(name) {
		s.log.Warn("refusing to remove upload with suspicious name", zap.String("path", publicPath))
		return
	}

	fullPath := filepath.Join(s.absBasePath, name)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to remove upload", zap.String("path", fullPath), zap.Error(err))
	}
}

// RemoveAll best-effort deletes a batch of stored paths (cascade cleanup).
func (s *Store) RemoveAll(publicPaths []string) {
	for _, p := range publicPaths {
		s.Remove(p)
	}
}

func (s *Store) write(file *multipart.FileHeader, name string) error {
	if !isValidName(name) {
		return fmt.Errorf("invalid upload file name: %s", name)
	}

	dstPath := filepath.Join(s.absBasePath, name)
	if !strings.HasPrefix(dstPath, s.absBasePath+string(os.PathSeparator)) {
		return fmt.Errorf("invalid upload path, potential directory traversal: %s", name)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file '%s': %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file '%s': %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write upload to '%s': %w", dstPath, err)
	}

	return nil
}

// generateName builds "<unix-nanos>_<8 uuid chars><ext>". Two files uploaded
// in the same request still get distinct names via the random suffix.
func generateName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), suffix, ext)
}

func isValidName(name string) bool {
	if name == "" || filepath.IsAbs(name) || strings.Contains(name, "..") {
		return false
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.') {
			return false
		}
	}
	return true
}
