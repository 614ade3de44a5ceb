// Package filex holds small filesystem helpers: working-directory subfolders
// and transcript file ingestion.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// EnsureSubdDir creates dirName under the current working directory and
// returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadTranscript returns the contents of a plain-text file no larger than
// maxSize bytes. Oversized files fail with common.ErrFileTooLarge, anything
// not detected as text with common.ErrUnsupportedFileType. The whole file
// is read at once.
func ReadTranscript(path string, maxSize int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", common.ErrUnsupportedFileType, path)
	}
	if st.Size() > maxSize {
		return "", common.Notice(common.ErrFileTooLarge,
			fmt.Sprintf("File too large: %s exceeds %d KiB.", filepath.Base(path), maxSize>>10))
	}

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > maxSize {
		return "", common.Notice(common.ErrFileTooLarge,
			fmt.Sprintf("File too large: %s exceeds %d KiB.", filepath.Base(path), maxSize>>10))
	}

	if !IsText(data) {
		return "", common.Notice(common.ErrUnsupportedFileType,
			fmt.Sprintf("Unsupported file type: %s is not a plain-text file.", filepath.Base(path)))
	}

	return string(data), nil
}

// IsText reports whether data sniffs as a text MIME type.
func IsText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") || strings.HasPrefix(m.String(), "text/") {
			return true
		}
	}
	return false
}
