package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Url     string `json:"url"`
	Port    int    `json:"port"`
	Verbose bool   `json:"verbose"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "config.local.json5", LocalPath("config.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json"), LocalPath(filepath.Join("a", "b.json")))
	require.Equal(t, "config.local", LocalPath("config"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	_, err := ReadConfig[testConfig](name)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, name, `{
		// base values
		url: "https://example.test",
		port: 8080,
	}`)
	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Url: "https://example.test", Port: 8080}, config)

	writeFile(t, LocalPath(name), `{ port: 9090, verbose: true }`)
	config, err = ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{Url: "https://example.test", Port: 9090, Verbose: true}, config)
}

func TestReadConfigInvalid(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.json5")
	writeFile(t, name, `{ port: `)

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config.json5")
}

func TestReadOrDefault(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")
	fallback := testConfig{Url: "https://default.test", Port: 3000}

	config, err := ReadOrDefault(name, fallback)
	require.NoError(t, err)
	require.Equal(t, fallback, config)

	writeFile(t, name, `{ port: 4000 }`)
	config, err = ReadOrDefault(name, fallback)
	require.NoError(t, err)
	require.Equal(t, testConfig{Url: "https://default.test", Port: 4000}, config)
}
