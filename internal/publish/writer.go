// Package publish writes generated pages to disk.
package publish

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"winery/internal/errors"
	"winery/internal/logging"
	"winery/ports"
)

// FileWriter replaces a single file with each page it is given
type FileWriter struct {
	path string
	perm os.FileMode
	log  zerolog.Logger
}

var _ ports.PageWriter = (*FileWriter)(nil)

// NewFileWriter creates a writer for path. Written files get mode 0644.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{
		path: path,
		perm: 0o644,
		log:  logging.Component("writer"),
	}
}

// Path is the file the writer replaces
func (w *FileWriter) Path() string {
	return w.path
}

// Write stores page at the writer's path, overwriting previous content.
// The bytes go to a temporary file in the same directory which is then
// renamed over the target, so readers see either the old or the new page.
func (w *FileWriter) Write(page []byte) error {
	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*")
	if err != nil {
		return errors.IOError("failed to create temporary file in "+dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(page); err != nil {
		tmp.Close()
		return errors.IOError("failed to write "+tmpName, err)
	}
	if err := tmp.Chmod(w.perm); err != nil {
		tmp.Close()
		return errors.IOError("failed to chmod "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.IOError("failed to close "+tmpName, err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return errors.IOError("failed to replace "+w.path, err)
	}

	w.log.Info().Str("file", w.path).Int("bytes", len(page)).Msg("page written")
	return nil
}
