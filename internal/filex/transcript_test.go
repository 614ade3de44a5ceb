package filex

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestReadTranscript_PlainText(t *testing.T) {
	p := writeFile(t, "talk.txt", []byte("00:00 hello\n00:10 world\n"))

	got, err := ReadTranscript(p, common.MaxTranscriptFileSize)
	require.NoError(t, err)
	assert.Equal(t, "00:00 hello\n00:10 world\n", got)
}

func TestReadTranscript_TooLarge(t *testing.T) {
	p := writeFile(t, "big.txt", bytes.Repeat([]byte("a"), 2<<20))

	_, err := ReadTranscript(p, common.MaxTranscriptFileSize)
	require.ErrorIs(t, err, common.ErrFileTooLarge)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, common.UserMessage(err), "File too large")
}

func TestReadTranscript_ExactlyAtLimit(t *testing.T) {
	p := writeFile(t, "edge.txt", bytes.Repeat([]byte("a"), 1024))

	got, err := ReadTranscript(p, 1024)
	require.NoError(t, err)
	assert.Len(t, got, 1024)
}

func TestReadTranscript_BinaryRejected(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	p := writeFile(t, "image.txt", png)

	_, err := ReadTranscript(p, common.MaxTranscriptFileSize)
	require.ErrorIs(t, err, common.ErrUnsupportedFileType)
}

func TestReadTranscript_Directory(t *testing.T) {
	_, err := ReadTranscript(t.TempDir(), common.MaxTranscriptFileSize)
	require.ErrorIs(t, err, common.ErrUnsupportedFileType)
}

func TestReadTranscript_Missing(t *testing.T) {
	_, err := ReadTranscript(filepath.Join(t.TempDir(), "nope.txt"), common.MaxTranscriptFileSize)
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrValidation)
}

func TestIsText(t *testing.T) {
	assert.True(t, IsText(nil))
	assert.True(t, IsText([]byte("plain words")))
	assert.True(t, IsText([]byte("WEBVTT\n\n00:00.000 --> 00:01.000\nhi\n")))
	assert.False(t, IsText([]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}))
}
