package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/printquote/internal/flagx"
	"github.com/dmitrijs2005/printquote/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config. Pointers distinguish
// "absent" from zero so a partial file only overrides what it names.
type JsonConfig struct {
	Output         *string         `json:"output"`
	HistoryDir     *string         `json:"history_dir"`
	Workers        *int            `json:"workers"`
	ServerAddr     *string         `json:"server_addr"`
	AccessToken    *string         `json:"access_token"`
	SiblingStorage *bool           `json:"sibling_storage"`
	MaxEntryBytes  *int64          `json:"max_entry_bytes"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with the file named by -c/-config. It panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Output != nil {
		cfg.Output = *jc.Output
	}
	if jc.HistoryDir != nil {
		cfg.HistoryDir = *jc.HistoryDir
	}
	if jc.Workers != nil {
		cfg.Workers = *jc.Workers
	}
	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.AccessToken != nil {
		cfg.AccessToken = *jc.AccessToken
	}
	if jc.SiblingStorage != nil {
		cfg.SiblingStorage = *jc.SiblingStorage
	}
	if jc.MaxEntryBytes != nil {
		cfg.MaxEntryBytes = *jc.MaxEntryBytes
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
