package fakeapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
)

func TestChapters_Formats(t *testing.T) {
	in := "welcome to the show\ntoday we cook pasta\nthanks for watching"

	assert.Equal(t,
		"## Chapters\n\n- **00:00** Welcome To The Show\n- **01:00** Today We Cook Pasta\n- **02:00** Thanks For Watching",
		chapters(in, models.FormatMarkdown))
	assert.Equal(t, "00:00 Welcome To The Show\n01:00 Today We Cook Pasta\n02:00 Thanks For Watching",
		chapters(in, models.FormatPlain))
	assert.True(t, strings.HasPrefix(chapters(in, models.FormatYouTube), "00:00 - Welcome"))
	assert.True(t, strings.HasPrefix(chapters(in, models.FormatTimestamps), "[00:00] Welcome"))
}

func TestChapters_SingleLineSplitsSentences(t *testing.T) {
	got := chapters("hello. world!", models.FormatPlain)
	assert.Equal(t, "00:00 Hello\n01:00 World", got)
}

func TestChapters_Capped(t *testing.T) {
	in := strings.Repeat("line\n", 20)
	assert.Len(t, strings.Split(chapters(in, models.FormatPlain), "\n"), maxChapters)
}

func TestTitles(t *testing.T) {
	got := titles("making sourdough bread at home with kids and dogs")
	assert.Equal(t, "1. Making Sourdough Bread At Home With\n2. How To Making Sourdough Bread At Home With\n3. Making Sourdough Bread At Home With: Everything You Need To Know", got)
}
