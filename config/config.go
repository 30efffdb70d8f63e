// Package config resolves the warehouse connection settings.
// Environment variables take precedence over the user-scoped config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// environment variables, standard Databricks names
	envHost         = "DATABRICKS_HOST"
	envHostFallback = "DATABRICKS_SERVER_HOSTNAME"
	envHTTPPath     = "DATABRICKS_HTTP_PATH"
	envToken        = "DATABRICKS_TOKEN"
)

// ConfigurationError reports missing or invalid connection settings.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"databricks configuration not found (missing: %s) - set environment variables:\n"+
			"  export DATABRICKS_HOST='https://your-workspace.cloud.databricks.com'\n"+
			"  export DATABRICKS_HTTP_PATH='/sql/1.0/warehouses/your-warehouse-id'\n"+
			"or create %s with these values",
		strings.Join(e.Missing, ", "), filePath())
}

// Config holds the resolved connection settings.
type Config struct {
	ServerHostname string `json:"server_hostname"`
	HTTPPath       string `json:"http_path"`
	AccessToken    string `json:"access_token,omitempty"`
}

func filePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".databricks", "config.json")
}

// Load resolves the configuration. Environment variables win; the config
// file only fills in fields the environment left empty. A missing or
// malformed file is not an error - validation happens in Validate.
func Load() *Config {
	cfg := &Config{
		ServerHostname: os.Getenv(envHost),
		HTTPPath:       os.Getenv(envHTTPPath),
		AccessToken:    os.Getenv(envToken),
	}
	if cfg.ServerHostname == "" {
		cfg.ServerHostname = os.Getenv(envHostFallback)
	}

	if cfg.ServerHostname != "" && cfg.HTTPPath != "" {
		return cfg
	}

	var fileCfg Config
	raw, err := os.ReadFile(filePath())
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(raw, &fileCfg); err != nil {
		return cfg
	}

	if cfg.ServerHostname == "" {
		cfg.ServerHostname = fileCfg.ServerHostname
	}
	if cfg.HTTPPath == "" {
		cfg.HTTPPath = fileCfg.HTTPPath
	}
	if cfg.AccessToken == "" {
		cfg.AccessToken = fileCfg.AccessToken
	}

	return cfg
}

// IsConfigured reports whether both required settings are present.
func (c *Config) IsConfigured() bool {
	return c.ServerHostname != "" && c.HTTPPath != ""
}

// Validate returns a *ConfigurationError naming the missing settings.
func (c *Config) Validate() error {
	var missing []string
	if c.ServerHostname == "" {
		missing = append(missing, "server_hostname")
	}
	if c.HTTPPath == "" {
		missing = append(missing, "http_path")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}

	return nil
}

// Hostname returns the server hostname with any scheme prefix stripped,
// the form the vendor client DSN expects.
func (c *Config) Hostname() string {
	host := strings.TrimPrefix(c.ServerHostname, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}

// DSN assembles the vendor client connection string. With an access token
// the token form is used, otherwise the external-browser OAuth flow is
// requested from the vendor client.
func (c *Config) DSN() string {
	path := c.HTTPPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if c.AccessToken != "" {
		return fmt.Sprintf("token:%s@%s:443%s", c.AccessToken, c.Hostname(), path)
	}

	return fmt.Sprintf("%s:443%s?authType=OauthU2M", c.Hostname(), path)
}
