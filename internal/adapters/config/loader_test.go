package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tetris-stack/internal/application"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	loader, err := NewLoader(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	session, err := cfg.SessionSettings()
	require.NoError(t, err)
	assert.Equal(t, application.DefaultSessionConfig(), session)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[queue]
capacity = 7

[stack]
capacity = 4

[session]
mode = "minimal"
seed = 42
id_start = 100

[log]
level = "debug"
file = "/tmp/tetris-stack.log"
`), 0o600))

	loader, err := NewLoader(viper.New(), path)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Queue.Capacity)
	assert.Equal(t, 4, cfg.Stack.Capacity)
	assert.Equal(t, "minimal", cfg.Session.Mode)
	assert.Equal(t, uint64(42), cfg.Session.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/tetris-stack.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)

	session, err := cfg.SessionSettings()
	require.NoError(t, err)
	assert.Equal(t, application.SessionConfig{
		Mode:          application.ModeMinimal,
		QueueCapacity: 7,
		StackCapacity: 4,
		FirstID:       100,
	}, session)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[queue]\ncapacity = 7\n"), 0o600))
	t.Setenv("TETRIS_STACK_QUEUE_CAPACITY", "9")

	loader, err := NewLoader(viper.New(), path)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Queue.Capacity)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "zero queue capacity", content: "[queue]\ncapacity = 0\n", wantErr: "Capacity"},
		{name: "oversized stack", content: "[stack]\ncapacity = 100\n", wantErr: "Capacity"},
		{name: "unknown mode", content: "[session]\nmode = \"arcade\"\n", wantErr: "Mode"},
		{name: "unknown log level", content: "[log]\nlevel = \"loud\"\n", wantErr: "Level"},
		{name: "future schema", content: "version = 2\n", wantErr: "unsupported config schema version 2"},
		{name: "broken toml", content: "[queue\n", wantErr: "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			loader, err := NewLoader(viper.New(), path)
			require.NoError(t, err)

			_, err = loader.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Queue.Capacity = 6
	cfg.Session.Mode = "minimal"

	require.NoError(t, WriteFile(path, cfg, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	loader, err := NewLoader(viper.New(), path)
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestWriteFileRefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteFile(path, Default(), false))

	err := WriteFile(path, Default(), false)
	require.ErrorContains(t, err, "already exists")

	require.NoError(t, WriteFile(path, Default(), true))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".config-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEncodeUsesSnakeCaseKeys(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[queue]")
	assert.Contains(t, string(data), "id_start = 0")
	assert.Contains(t, string(data), "max_size_mb = 10")
}
