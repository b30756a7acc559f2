package pathutils

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gemini-testing/path-utils/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()
	defer effect.Swap(&lookupEnv, func(key string) (string, bool) {
		if key == "LOGS_DIRECTORY" {
			return dir, true
		}
		return "", false
	})()

	logger := NewLogger(slog.LevelInfo)
	logger.Debug("Hidden.")
	logger.Info("Expanded.", slog.Int("count", 2))

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "Expanded.", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.EqualValues(t, 2, record["count"])
}
