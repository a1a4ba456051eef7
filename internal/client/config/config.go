package config

import (
	"time"

	"github.com/dmitrijs2005/printquote/internal/archive"
)

// Config holds runtime settings for the printquote CLI.
//
// ServerAddr switches the CLI into remote mode: the archive is sent to the
// quote server instead of being estimated locally.
type Config struct {
	Archive        string
	Output         string
	HistoryDir     string
	Workers        int
	ServerAddr     string
	AccessToken    string
	JobID          string
	ListHistory    bool
	SiblingStorage bool
	MaxEntryBytes  int64
	RequestTimeout time.Duration
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.HistoryDir = ".printquote"
	c.MaxEntryBytes = archive.DefaultMaxEntryBytes
	c.RequestTimeout = 2 * time.Minute
}

// Remote reports whether the CLI should talk to a quote server.
func (c *Config) Remote() bool {
	return c.ServerAddr != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
