package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeConfig(t *testing.T, backendURL string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := fmt.Sprintf(`
[backend]
url = %q

[auth]
mode = "static"
username = "admin"
password_hash = %q

[session]
secret = "0123456789abcdef0123456789abcdef"

[pagination.page_sizes]
contactus = 2
`, backendURL, string(hash))

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return path
}

func newContactBackend(t *testing.T, deleted *[]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/contactus":
			_, _ = w.Write([]byte(`{"contacts":[{"_id":"c1","name":"Ann"},{"_id":"c2","name":"Bob"},{"_id":"c3","name":"Eve"}]}`))
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/contactus/"):
			*deleted = append(*deleted, strings.TrimPrefix(r.URL.Path, "/contactus/"))
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFamiliesCmd(t *testing.T) {
	var deleted []string
	cfg := writeConfig(t, newContactBackend(t, &deleted).URL)

	out, err := run(t, "families", "--config", cfg, "--username", "admin", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "contactus")
	assert.Contains(t, out, "list,delete")
}

func TestListCmd_SecondPage(t *testing.T) {
	var deleted []string
	cfg := writeConfig(t, newContactBackend(t, &deleted).URL)

	out, err := run(t, "list", "contactus", "--page", "2", "--config", cfg, "--username", "admin", "--password", "s3cret")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"_id":"c3"`)
}

func TestListCmd_PageOutOfRange(t *testing.T) {
	var deleted []string
	cfg := writeConfig(t, newContactBackend(t, &deleted).URL)

	_, err := run(t, "list", "contactus", "--page", "5", "--config", cfg, "--username", "admin", "--password", "s3cret")
	assert.Error(t, err)
}

func TestDeleteCmd(t *testing.T) {
	var deleted []string
	cfg := writeConfig(t, newContactBackend(t, &deleted).URL)

	out, err := run(t, "delete", "contactus", "c2", "--config", cfg, "--username", "admin", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted contactus c2")
	assert.Equal(t, []string{"c2"}, deleted)
}

func TestCmd_WrongPassword(t *testing.T) {
	var deleted []string
	cfg := writeConfig(t, newContactBackend(t, &deleted).URL)

	_, err := run(t, "families", "--config", cfg, "--username", "admin", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}
