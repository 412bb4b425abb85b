package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/hashing/config"
)

func writeConfig(
	tb testing.TB,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(tb.TempDir(), "hashing.yaml")
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, 1, cfg.Depth)
	assert.False(t, cfg.Concat)
	assert.Empty(t, cfg.Format)
}

func TestLoad_overlays_present_fields(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "algorithm: md5\ndepth: -1\n")

	cfg, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(t, "md5", cfg.Algorithm)
	assert.Equal(t, -1, cfg.Depth)

	// Untouched fields keep their defaults.
	assert.False(t, cfg.Concat)
	assert.Empty(t, cfg.Format)
}

func TestLoad_all_fields(t *testing.T) {
	t.Parallel()

	pa := writeConfig(
		t,
		"algorithm: md5\n"+
			"depth: 3\n"+
			"concat: true\n"+
			"format: \"{algorithm} {digest}\"\n",
	)

	cfg, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(
		t,
		config.Config{
			Algorithm: "md5",
			Depth:     3,
			Concat:    true,
			Format:    "{algorithm} {digest}",
		},
		cfg,
	)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/does/not/exist.yaml")

	require.Error(t, err)
}

func TestLoad_malformed_yaml(t *testing.T) {
	t.Parallel()

	pa := writeConfig(t, "algorithm: [unclosed\n")

	_, err := config.Load(pa)

	require.Error(t, err)
}
