package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/creatorpilot/internal/flagx"
	"github.com/dmitrijs2005/creatorpilot/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding config files. Zero
// values mean "not set" and leave the earlier layers alone.
type FileConfig struct {
	APIBaseURL      string         `json:"api_url" yaml:"api_url"`
	RequestTimeout  timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath    string         `json:"database_path" yaml:"database_path"`
	HistoryPageSize int            `json:"history_page_size" yaml:"history_page_size"`
	ExportDir       string         `json:"export_dir" yaml:"export_dir"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	S3              struct {
		Bucket    string `json:"bucket" yaml:"bucket"`
		Region    string `json:"region" yaml:"region"`
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		AccessKey string `json:"access_key" yaml:"access_key"`
		SecretKey string `json:"secret_key" yaml:"secret_key"`
	} `json:"s3" yaml:"s3"`
}

// parseFile overlays cfg with the file named by -c/-config in args. Read
// and decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.APIBaseURL, fc.APIBaseURL)
	set(&cfg.DatabasePath, fc.DatabasePath)
	set(&cfg.ExportDir, fc.ExportDir)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.S3Bucket, fc.S3.Bucket)
	set(&cfg.S3Region, fc.S3.Region)
	set(&cfg.S3Endpoint, fc.S3.Endpoint)
	set(&cfg.S3AccessKey, fc.S3.AccessKey)
	set(&cfg.S3SecretKey, fc.S3.SecretKey)

	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.HistoryPageSize > 0 {
		cfg.HistoryPageSize = fc.HistoryPageSize
	}
}
