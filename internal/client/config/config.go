package config

import (
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
)

// Config holds runtime settings for the CreatorPilot CLI.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	DatabasePath    string
	HistoryPageSize int
	ExportDir       string
	LogLevel        string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "creatorpilot.db"
	c.HistoryPageSize = 5
	c.ExportDir = "exports"
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return common.ErrNoBaseURL
	}
	return nil
}

// S3Enabled reports whether S3 export has a bucket to write to.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config from defaults, environment, config file and
// flags, in that order. Malformed input panics, as flag parsing does.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, os.LookupEnv)
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
