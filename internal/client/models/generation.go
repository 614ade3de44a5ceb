package models

import (
	"fmt"
	"strings"
	"time"
)

// Tool names the backend feature that produced an output.
type Tool string

const (
	ToolChapters Tool = "chapters"
	ToolTitles   Tool = "titles"
)

// Format is the requested output layout for chapter generation.
type Format string

const (
	FormatMarkdown   Format = "markdown"
	FormatPlain      Format = "plain"
	FormatYouTube    Format = "youtube"
	FormatTimestamps Format = "timestamps"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatMarkdown, FormatPlain, FormatYouTube, FormatTimestamps}

// ParseFormat accepts the canonical names case-insensitively, plus the
// "Plain Text" label used by the web client.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "plain", "plain text", "text":
		return FormatPlain, nil
	case "youtube":
		return FormatYouTube, nil
	case "timestamps":
		return FormatTimestamps, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// GenerationRequest is one transcript submitted for generation.
type GenerationRequest struct {
	Tool       Tool
	Transcript string
	Format     Format
}

// GenerationResult is the artifact returned by a successful generation.
type GenerationResult struct {
	Tool      Tool
	Format    Format
	Text      string
	CreatedAt time.Time
}
