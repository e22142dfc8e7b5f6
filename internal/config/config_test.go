package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(`
[output]
format = "yaml"

[parse]
jobs = 3
`)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 3, cfg.Parse.Jobs)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"unknown format", "[output]\nformat = \"json\"", "unknown output format"},
		{"empty format", "[output]\nformat = \"\"", "must not be empty"},
		{"unknown color", "[output]\ncolor = \"always\"", "unknown color mode"},
		{"zero jobs", "[parse]\njobs = 0", "at least 1"},
		{"negative verbosity", "[log]\nverbosity = -1", "must not be negative"},
		{"unknown key", "[output]\nwidth = 80", "unknown key"},
		{"bad toml", "[output", "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "contracts", "token")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, Default().Output, cfg.Output)

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"debug\"\ncolor = \"off\"\n"), 0o644))

	cfg, err = Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Output.Format)
	assert.Equal(t, "off", cfg.Output.Color)
	assert.Equal(t, path, cfg.Path)
}
