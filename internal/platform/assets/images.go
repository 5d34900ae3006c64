package assets

import (
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// GeneratedPrefix is the file name prefix of every generated image.
const GeneratedPrefix = "generated_"

// ImageStore writes generated images under <public>/<subdir> and returns
// their public URL path.
type ImageStore struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewImageStore creates the generated image directory if needed.
func NewImageStore(publicDir, generatedSubdir string) (*ImageStore, error) {
	dir := filepath.Join(publicDir, filepath.FromSlash(generatedSubdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	return &ImageStore{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(path.Clean(filepath.ToSlash(generatedSubdir)), "/"),
		now:       time.Now,
	}, nil
}

// Dir returns the directory images are written to.
func (s *ImageStore) Dir() string { return s.dir }

// SaveImage writes data as generated_<unix-ms>.<ext> and returns its URL
// path. Files are never overwritten: a name collision is an error.
func (s *ImageStore) SaveImage(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	name := fmt.Sprintf("%s%d%s", GeneratedPrefix, s.now().UnixMilli(), ExtensionFor(mimeType))
	full := filepath.Join(s.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("failed to write image file %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file %s: %w", name, err)
	}

	return s.urlPrefix + "/" + name, nil
}

// ExtensionFor maps an image MIME type to a file extension, defaulting to .png.
func ExtensionFor(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ".png"
	}
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// MIMETypeFor guesses the image MIME type of a file from its extension,
// defaulting to image/png.
func MIMETypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// BackupPath returns <dir>/<name>_backup<ext> for file.
func BackupPath(file string) string {
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + "_backup" + ext
}

// ReplaceWithBackup copies file to its BackupPath and then overwrites file
// with data. It returns the backup path.
func ReplaceWithBackup(file string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	original, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}

	backup := BackupPath(file)
	if err := os.WriteFile(backup, original, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
	}

	if err := os.WriteFile(file, data, 0o644); err != nil {
		return backup, fmt.Errorf("failed to overwrite %s: %w", file, err)
	}
	return backup, nil
}
