package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	content := "ENVIRONMENT=test\nHTTP_SERVER_ADDRESS=0.0.0.0:8080\nSTRICT_PARSING=true\n"
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "test", config.Environment)
	require.Equal(t, "0.0.0.0:8080", config.HTTPServerAddress)
	require.True(t, config.StrictParsing)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}
