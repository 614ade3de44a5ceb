package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL      = "CREATORPILOT_API_URL"
	EnvTimeout     = "CREATORPILOT_TIMEOUT"
	EnvDatabase    = "CREATORPILOT_DB"
	EnvPageSize    = "CREATORPILOT_PAGE_SIZE"
	EnvExportDir   = "CREATORPILOT_EXPORT_DIR"
	EnvLogLevel    = "CREATORPILOT_LOG_LEVEL"
	EnvS3Bucket    = "CREATORPILOT_S3_BUCKET"
	EnvS3Region    = "CREATORPILOT_S3_REGION"
	EnvS3Endpoint  = "CREATORPILOT_S3_ENDPOINT"
	EnvS3AccessKey = "CREATORPILOT_S3_ACCESS_KEY"
	EnvS3SecretKey = "CREATORPILOT_S3_SECRET_KEY"
)

// LoadDotEnv reads .env from the working directory into the process
// environment. Variables already set are not overridden and a missing file
// is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// parseEnv overlays cfg with variables found by lookup. A variable that is
// set, even to "", wins over the default.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	str(EnvAPIURL, &cfg.APIBaseURL)
	str(EnvDatabase, &cfg.DatabasePath)
	str(EnvExportDir, &cfg.ExportDir)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvS3Bucket, &cfg.S3Bucket)
	str(EnvS3Region, &cfg.S3Region)
	str(EnvS3Endpoint, &cfg.S3Endpoint)
	str(EnvS3AccessKey, &cfg.S3AccessKey)
	str(EnvS3SecretKey, &cfg.S3SecretKey)

	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.HistoryPageSize = n
	}
}
