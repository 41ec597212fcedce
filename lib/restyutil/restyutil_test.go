package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput map[string]string

func (m memoryOutput) Write(id string, contents string) {
	m[id] = contents
}

func TestDumpExchanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	output := memoryOutput{}
	client := resty.New()
	client.SetHeader("User-Agent", "dump-test")
	DumpExchanges(client, output)

	_, err := client.R().Get(srv.URL + "/pot")
	require.NoError(t, err)
	_, err = client.R().Get(srv.URL + "/pot")
	require.NoError(t, err)

	require.Len(t, output, 2)
	dump := output["0001.txt"]
	require.Contains(t, dump, "GET "+srv.URL+"/pot")
	require.Contains(t, dump, "User-Agent: dump-test")
	require.Contains(t, dump, "418")
	require.Contains(t, dump, "X-Test: yes")
	require.Contains(t, dump, "short and stout")
	require.Contains(t, output, "0002.txt")
}

func TestDumpExchangesNilOutput(t *testing.T) {
	client := resty.New()
	DumpExchanges(client, nil)
}

func TestFilesystemOutput(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(output.Dir()))
	output.Write("0001.txt", "contents")

	kept, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(kept))

	contents, err := os.ReadFile(filepath.Join(output.Dir(), "0001.txt"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))

	second, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	require.NotEqual(t, output.Dir(), second.Dir())
	_, err = os.Stat(filepath.Join(output.Dir(), "0001.txt"))
	require.NoError(t, err)
}

func TestFilesystemOutputCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps", "nested")

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	info, err := os.Stat(output.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
