package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_url":         "http://www.example:9000",
		"request_timeout": "10s",
		"s3":              map[string]any{"bucket": "b", "endpoint": "http://minio:9000"},
	})

	t.Run("loads JSON from flags", func(t *testing.T) {
		cfg := &Config{}
		parseFile(cfg, []string{"-config", pathFlag})

		assert.Equal(t, "http://www.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "b", cfg.S3Bucket)
		assert.Equal(t, "http://minio:9000", cfg.S3Endpoint)
	})

	t.Run("loads YAML by extension", func(t *testing.T) {
		p := filepath.Join(dir, "cfg.yml")
		require.NoError(t, os.WriteFile(p, []byte("history_page_size: 9\nrequest_timeout: 2m\nlog_level: error\n"), 0o600))

		cfg := &Config{APIBaseURL: "keep"}
		parseFile(cfg, []string{"-c", p})

		assert.Equal(t, 9, cfg.HistoryPageSize)
		assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "keep", cfg.APIBaseURL, "absent keys leave earlier values")
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "defaults:1234", RequestTimeout: 42 * time.Second}
		parseFile(cfg, nil)

		assert.Equal(t, "defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseFile(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "nope.yaml")}) })
	})
}
