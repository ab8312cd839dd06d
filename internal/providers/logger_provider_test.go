package providers

import (
	"os"
	"path/filepath"
	"swiped/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("DELETE"))
}

func loggerConfig(dir, level string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: level,
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir, "info"))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "application message %d", 1)
	logger.Infof(TypeGet, "get message")
	logger.Infof(TypePost, "post message")
	logger.Close()

	for _, name := range []string{"app.log", "get.log", "post.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "application message 1")
}

func TestNewLogProvider_LevelFiltersBelow(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir, "warn"))
	require.NoError(t, err)

	logger.Debugf(TypeApp, "hidden")
	logger.Warnf(TypeApp, "visible")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	_, err := NewLogProvider(loggerConfig(t.TempDir(), "chatty"))
	assert.Error(t, err)
}

func TestNewLogProvider_UnwritableDir(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("/nonexistent/path/for/logs", "info"))
	assert.Error(t, err)
}
