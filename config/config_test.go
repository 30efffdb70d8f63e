package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv guarantees a clean environment and an empty home directory
// for the duration of a test.
func clearEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envHost, "")
	t.Setenv(envHostFallback, "")
	t.Setenv(envHTTPPath, "")
	t.Setenv(envToken, "")

	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, ".databricks")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644))
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHost, "https://workspace.cloud.databricks.com")
	t.Setenv(envHTTPPath, "/sql/1.0/warehouses/abc")

	cfg := Load()

	assert.Equal(t, "https://workspace.cloud.databricks.com", cfg.ServerHostname)
	assert.Equal(t, "/sql/1.0/warehouses/abc", cfg.HTTPPath)
	assert.True(t, cfg.IsConfigured())
}

func TestLoad_HostFallbackVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv(envHostFallback, "fallback.cloud.databricks.com")
	t.Setenv(envHTTPPath, "/sql/1.0/warehouses/abc")

	cfg := Load()

	assert.Equal(t, "fallback.cloud.databricks.com", cfg.ServerHostname)
}

func TestLoad_FromConfigFile(t *testing.T) {
	home := clearEnv(t)
	writeConfigFile(t, home, `{
		"server_hostname": "file.cloud.databricks.com",
		"http_path": "/sql/1.0/warehouses/fromfile",
		"access_token": "dapi123"
	}`)

	cfg := Load()

	assert.Equal(t, "file.cloud.databricks.com", cfg.ServerHostname)
	assert.Equal(t, "/sql/1.0/warehouses/fromfile", cfg.HTTPPath)
	assert.Equal(t, "dapi123", cfg.AccessToken)
}

func TestLoad_EnvironmentTakesPrecedence(t *testing.T) {
	home := clearEnv(t)
	writeConfigFile(t, home, `{
		"server_hostname": "file.cloud.databricks.com",
		"http_path": "/sql/1.0/warehouses/fromfile"
	}`)
	t.Setenv(envHost, "env.cloud.databricks.com")

	cfg := Load()

	// env wins for the host, file fills in the rest
	assert.Equal(t, "env.cloud.databricks.com", cfg.ServerHostname)
	assert.Equal(t, "/sql/1.0/warehouses/fromfile", cfg.HTTPPath)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	home := clearEnv(t)
	writeConfigFile(t, home, `{not json`)

	cfg := Load()

	assert.False(t, cfg.IsConfigured())
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	err := cfg.Validate()

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, []string{"server_hostname", "http_path"}, confErr.Missing)

	cfg.ServerHostname = "workspace.cloud.databricks.com"
	cfg.HTTPPath = "/sql/1.0/warehouses/abc"
	assert.NoError(t, cfg.Validate())
}

func TestHostname_StripsScheme(t *testing.T) {
	tests := []struct {
		give string
		want string
	}{
		{give: "https://workspace.cloud.databricks.com", want: "workspace.cloud.databricks.com"},
		{give: "http://workspace.cloud.databricks.com/", want: "workspace.cloud.databricks.com"},
		{give: "workspace.cloud.databricks.com", want: "workspace.cloud.databricks.com"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			cfg := &Config{ServerHostname: tt.give}
			assert.Equal(t, tt.want, cfg.Hostname())
		})
	}
}

func TestDSN(t *testing.T) {
	t.Run("token form", func(t *testing.T) {
		cfg := &Config{
			ServerHostname: "https://workspace.cloud.databricks.com",
			HTTPPath:       "/sql/1.0/warehouses/abc",
			AccessToken:    "dapi123",
		}

		assert.Equal(t,
			"token:dapi123@workspace.cloud.databricks.com:443/sql/1.0/warehouses/abc",
			cfg.DSN())
	})

	t.Run("oauth form without token", func(t *testing.T) {
		cfg := &Config{
			ServerHostname: "workspace.cloud.databricks.com",
			HTTPPath:       "sql/1.0/warehouses/abc",
		}

		assert.Equal(t,
			"workspace.cloud.databricks.com:443/sql/1.0/warehouses/abc?authType=OauthU2M",
			cfg.DSN())
	})
}
