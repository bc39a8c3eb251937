package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 9090
allowed_origins = ["http://localhost:3000"]

[backend]
url = "http://backend:5000/"
timeout = 3

[auth]
mode = "static"
username = "admin"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"

[session]
secret = "0123456789abcdef0123456789abcdef"

[pagination.page_sizes]
contactus = 10
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(validConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://backend:5000", cfg.Backend.URL)
	assert.Equal(t, 3, cfg.Backend.Timeout)
	assert.Equal(t, "smc_admin_session", cfg.Session.CookieName)
	assert.Equal(t, 8*60*60, cfg.Session.MaxAge)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, map[string]int{"contactus": 10}, cfg.Pagination.PageSizes)
	assert.False(t, cfg.Database.Enabled)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing backend url",
			data: `
[auth]
username = "admin"
password_hash = "x"
[session]
secret = "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "static mode without hash",
			data: `
[backend]
url = "http://backend"
[auth]
username = "admin"
[session]
secret = "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "remote mode without url",
			data: `
[backend]
url = "http://backend"
[auth]
mode = "remote"
[session]
secret = "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "unknown auth mode",
			data: `
[backend]
url = "http://backend"
[auth]
mode = "ldap"
[session]
secret = "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "short session secret",
			data: `
[backend]
url = "http://backend"
[auth]
username = "admin"
password_hash = "x"
[session]
secret = "short"
`,
		},
		{
			name: "non-positive page size",
			data: `
[backend]
url = "http://backend"
[auth]
username = "admin"
password_hash = "x"
[session]
secret = "0123456789abcdef0123456789abcdef"
[pagination.page_sizes]
service = 0
`,
		},
		{
			name: "database without name",
			data: `
[backend]
url = "http://backend"
[auth]
username = "admin"
password_hash = "x"
[session]
secret = "0123456789abcdef0123456789abcdef"
[database]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_MalformedTOML(t *testing.T) {
	_, err := Parse("[backend\nurl = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.Auth.Username)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "admin", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=admin sslmode=disable", d.DSN())
}
