package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/printquote/internal/archive"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ".printquote", c.HistoryDir)
	assert.Equal(t, int64(archive.DefaultMaxEntryBytes), c.MaxEntryBytes)
	assert.Equal(t, 2*time.Minute, c.RequestTimeout)
	assert.False(t, c.Remote())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"printquote"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, ".printquote", cfg.HistoryDir)
	assert.Empty(t, cfg.Archive)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_addr": "json:1",
		"workers":     2,
	})
	os.Args = []string{"printquote", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "flag:2", cfg.ServerAddr)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Remote())
}
