package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Seed.SampleData)
	assert.Equal(t, "Roster", cfg.Roster.SheetName)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
logging:
  level: debug
  format: text
seed:
  sample_data: true
roster:
  sheet_name: Grades
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Seed.SampleData)
	assert.Equal(t, "Grades", cfg.Roster.SheetName)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SEED_SAMPLE_DATA", "true")
	t.Setenv("ROSTER_MAX_UPLOAD_SIZE", "1024")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.Seed.SampleData)
	assert.Equal(t, int64(1024), cfg.Roster.MaxUploadSize)
}

func TestLoadConfig_InvalidEnvValue(t *testing.T) {
	t.Setenv("SEED_SAMPLE_DATA", "maybe")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_SAMPLE_DATA")
}

func TestLoadConfig_Validation(t *testing.T) {
	cases := map[string]string{
		"bad mode":   "server:\n  mode: staging\n",
		"bad level":  "logging:\n  level: loud\n",
		"bad format": "logging:\n  format: xml\n",
		"no port":    "server:\n  port: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
