package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Load(""))

	p, err := StorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultStoreName), p)
	assert.False(t, viper.GetBool("output.all"))
}

func TestLoad_ConfigFile(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  path: /tmp/custom.db
output:
  hashes: true
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))
	require.NoError(t, Load(cfg))

	assert.Equal(t, "/tmp/custom.db", viper.GetString("store.path"))
	assert.True(t, viper.GetBool("output.hashes"))
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REMEMFILE_STORE_PATH", "/tmp/from-env.db")

	require.NoError(t, Load(""))
	assert.Equal(t, "/tmp/from-env.db", viper.GetString("store.path"))
}

func TestLoad_Malformed(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store: [unclosed"), 0644))

	err := Load(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fatal error config file")
}

func TestStorePath_Tilde(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Set("store.path", "~/db/hashes.db")

	p, err := StorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "db", "hashes.db"), p)
}
