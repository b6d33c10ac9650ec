package logger

import (
	"dsa_platform_backend/internal/config"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{File: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	}
	InitLogger(cfg)

	Log.Debug("hidden in release mode")
	Log.Info("leaderboard refreshed", zap.Int("entries", 3))
	_ = Log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "leaderboard refreshed", entry["msg"])
	assert.EqualValues(t, 3, entry["entries"])
}
