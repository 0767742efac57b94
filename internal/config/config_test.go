package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(koanf.New("."), nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	tests := map[string]string{
		"gl.yaml": "color: false\nlog:\n  format: json\ndiff:\n  tmpdir: /var/tmp\n",
		"gl.json": `{"color": false, "log": {"format": "json"}, "diff": {"tmpdir": "/var/tmp"}}`,
		"gl.toml": "color = false\n[log]\nformat = \"json\"\n[diff]\ntmpdir = \"/var/tmp\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(koanf.New("."), nil, writeConfig(t, name, content))
			require.NoError(t, err)

			assert.False(t, cfg.Color)
			assert.Equal(t, "json", cfg.Log.Format)
			assert.Equal(t, "/var/tmp", cfg.Diff.TmpDir)
		})
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(koanf.New("."), nil, writeConfig(t, "gl.ini", "x=1"))
	assert.ErrorContains(t, err, "unknown file extension")
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "gl.yaml", "debug: false\nlog:\n  format: text\n")
	t.Setenv("GL_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("gl", pflag.ContinueOnError)
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--debug"}))

	cfg, err := Load(koanf.New("."), flags, path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	t.Setenv("GL_LOG_FORMAT", "xml")

	_, err := Load(koanf.New("."), nil, "")
	assert.ErrorContains(t, err, "invalid log.format")
}
