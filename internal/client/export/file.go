package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/filex"
)

const timestampLayout = "20060102-150405"

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// FileExporter writes results as <tool>-<timestamp>-<id>.txt under Dir. The
// short random id keeps exports made within the same second apart. A relative
// Dir is created under the working directory. With HTML set, markdown results
// also get a rendered .html sibling.
type FileExporter struct {
	Dir  string
	HTML bool

	now func() time.Time
}

func NewFileExporter(dir string, html bool) *FileExporter {
	return &FileExporter{Dir: dir, HTML: html, now: time.Now}
}

func (e *FileExporter) Export(_ context.Context, r models.GenerationResult) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if filepath.IsAbs(dir) {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", dir, err)
		}
	} else {
		abs, err := filex.EnsureSubdDir(dir)
		if err != nil {
			return "", err
		}
		dir = abs
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	name := fmt.Sprintf("%s-%s-%s", toolName(r.Tool), now().Format(timestampLayout), uuid.NewString()[:8])
	base := filepath.Join(dir, name)

	txt := base + ".txt"
	if err := os.WriteFile(txt, []byte(r.Text), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", txt, err)
	}

	if e.HTML && r.Format == models.FormatMarkdown {
		page, err := RenderHTML(r.Text, string(r.Tool))
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(base+".html", page, 0o600); err != nil {
			return "", fmt.Errorf("write %s.html: %w", base, err)
		}
	}

	return txt, nil
}

// RenderHTML converts markdown text to a standalone HTML page.
func RenderHTML(text, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(text), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func toolName(t models.Tool) string {
	if t == "" {
		return "result"
	}
	return string(t)
}
