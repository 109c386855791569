package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	flags := rootCmd.Flags()

	for name, def := range map[string]string{
		"config":    "",
		"assets":    "",
		"log-level": "info",
		"seed":      "0",
	} {
		f := flags.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

func TestRun_BadLogLevel(t *testing.T) {
	err := run(options{logLevel: "shouty"})
	assert.Error(t, err)
}

func TestRun_MissingConfig(t *testing.T) {
	err := run(options{
		logLevel:   "error",
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestRun_MissingAssets(t *testing.T) {
	err := run(options{
		logLevel:  "error",
		assetsDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startup: failed to read font")
}
