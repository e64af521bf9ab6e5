package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where the note vault lives on disk and how note and
// attachment files are named. Dates are ISO strings (YYYY-MM-DD) as produced
// by the parsing core.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If
// basePath is empty, it falls back to ~/Diary (or another location
// determined by ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the vault root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// NotePath resolves the absolute path of the note file for the supplied
// date: <vault>/<year>/<date>.md. The file may not exist yet.
func (m *Manager) NotePath(date string) string {
	return filepath.Join(m.basePath, yearOf(date), date+".md")
}

// EnsureNoteDir guarantees the year directory for the date exists and
// returns the note's absolute path.
func (m *Manager) EnsureNoteDir(date string) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.NotePath(date)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	return path, nil
}

// AttachmentDir resolves the directory storing the date's attachments.
func (m *Manager) AttachmentDir(date string) string {
	return filepath.Join(m.basePath, "assets", date)
}

// SaveAttachment stores one raw attachment buffer under a fresh uuid name
// and returns its vault-relative identifier (assets/<date>/<uuid>.<ext>).
func (m *Manager) SaveAttachment(date string, data []byte, fileType string) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	dir := m.AttachmentDir(date)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("create attachment dir: %w", err)
	}

	ext := strings.TrimPrefix(fileType, ".")
	if ext == "" {
		ext = "bin"
	}
	name := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, filePermissions); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	return filepath.ToSlash(filepath.Join("assets", date, name)), nil
}

func yearOf(date string) string {
	if i := strings.IndexByte(date, '-'); i > 0 {
		return date[:i]
	}
	return date
}
