package fakeapi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

const (
	maxChapters    = 5
	chapterSpacing = 60
	wordsPerTitle  = 6
)

// segments splits a transcript into non-empty lines, falling back to
// sentences for single-line input.
func segments(transcript string) []string {
	var out []string
	for _, line := range strings.Split(transcript, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 1 {
		out = out[:0]
		for _, s := range strings.FieldsFunc(transcript, func(r rune) bool { return r == '.' || r == '!' || r == '?' }) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func headline(s string, words int) string {
	f := strings.Fields(s)
	if len(f) > words {
		f = f[:words]
	}
	for i, w := range f {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		f[i] = string(r)
	}
	return strings.TrimRight(strings.Join(f, " "), ",;:")
}

func stamp(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// chapters renders up to maxChapters evenly spaced chapter markers.
func chapters(transcript string, format models.Format) string {
	segs := segments(transcript)
	if len(segs) > maxChapters {
		segs = segs[:maxChapters]
	}

	var b strings.Builder
	if format == models.FormatMarkdown {
		b.WriteString("## Chapters\n\n")
	}
	for i, s := range segs {
		ts, title := stamp(i*chapterSpacing), headline(s, wordsPerTitle)
		switch format {
		case models.FormatMarkdown:
			fmt.Fprintf(&b, "- **%s** %s\n", ts, title)
		case models.FormatYouTube:
			fmt.Fprintf(&b, "%s - %s\n", ts, title)
		case models.FormatTimestamps:
			fmt.Fprintf(&b, "[%s] %s\n", ts, title)
		default:
			fmt.Fprintf(&b, "%s %s\n", ts, title)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// titles renders three title suggestions from the opening words.
func titles(transcript string) string {
	segs := segments(transcript)
	topic := "Your Video"
	if len(segs) > 0 {
		topic = headline(segs[0], wordsPerTitle)
	}
	return strings.Join([]string{
		"1. " + topic,
		"2. How To " + topic,
		"3. " + topic + ": Everything You Need To Know",
	}, "\n")
}
