package markdown

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rijikit/riji/internal/diary"
	"github.com/rijikit/riji/internal/files"
)

// Writer persists rendered entries into the vault, one note per date.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to write Markdown notes.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Write stores the entry as <vault>/<year>/<date>.md. When the note already
// exists the entry body is appended, unless the note already contains it, in
// which case the write is a no-op so repeated imports stay idempotent.
func (w *Writer) Write(ctx context.Context, entry diary.Entry) error {
	if w == nil || w.manager == nil {
		return errors.New("writer not initialized with file manager")
	}

	path, err := w.manager.EnsureNoteDir(entry.Date)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		rendered, err := Render(entry)
		if err != nil {
			return err
		}
		return writeAtomic(path, rendered)
	}
	if err != nil {
		return err
	}

	if entry.Content != "" && strings.Contains(string(existing), entry.Content) {
		return nil
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(string(existing), "\n"))
	b.WriteString("\n")
	if entry.Content != "" {
		b.WriteString("\n")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	if len(entry.Attachments) > 0 {
		b.WriteString(renderAttachments(entry.Attachments))
	}
	return writeAtomic(path, b.String())
}

// writeAtomic writes content through a temp file in the note's directory and
// renames it into place, preserving the mode of an existing note.
func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "riji-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
