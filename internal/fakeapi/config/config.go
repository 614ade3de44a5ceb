// Package config handles configuration for the development API server:
// defaults, an optional JSON or YAML file and command-line flags.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/creatorpilot/internal/flagx"
	"github.com/dmitrijs2005/creatorpilot/internal/timex"
)

// Config holds runtime settings for the fake CreatorPilot API.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenTTL: lifetime of issued tokens.
//   - RequestLog: log every request through chi's middleware.Logger.
type Config struct {
	Addr       string
	SecretKey  string
	TokenTTL   time.Duration
	RequestLog bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is public and must be overridden outside local use.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "creatorpilot-dev-secret"
	c.TokenTTL = 24 * time.Hour
	c.RequestLog = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

type fileConfig struct {
	Addr       string         `json:"addr" yaml:"addr"`
	SecretKey  string         `json:"secret_key" yaml:"secret_key"`
	TokenTTL   timex.Duration `json:"token_ttl" yaml:"token_ttl"`
	RequestLog *bool          `json:"request_log" yaml:"request_log"`
}

func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.TokenTTL.Duration > 0 {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	if fc.RequestLog != nil {
		cfg.RequestLog = *fc.RequestLog
	}
}
