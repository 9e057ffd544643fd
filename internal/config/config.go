// Package config handles the XDG configuration directory and settings.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "vtask"

	// APIKeyEnv is the environment variable holding the model API key.
	APIKeyEnv = "OPENAI_API_KEY"

	// APIKeyFile is the fallback key filename in the config directory.
	APIKeyFile = "api_key"

	// SettingsFile is the optional settings filename.
	SettingsFile = "config.yml"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the API endpoint used when none is configured.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultListenAddr is the serve command's default bind address.
	DefaultListenAddr = ":8099"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Model is the chat model name.
	Model string

	// BaseURL is the OpenAI-compatible API base URL.
	BaseURL string

	// ListenAddr is the HTTP server bind address.
	ListenAddr string
}

// settings is the on-disk shape of config.yml. All fields are optional.
type settings struct {
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	ListenAddr string `yaml:"listen_addr"`
}

// New creates a Config with the default or specified config directory,
// applying config.yml on top of the defaults if it exists.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:        dir,
		Model:      DefaultModel,
		BaseURL:    DefaultBaseURL,
		ListenAddr: DefaultListenAddr,
	}

	data, err := os.ReadFile(cfg.SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", cfg.SettingsPath(), err)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", cfg.SettingsPath(), err)
	}
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	if s.ListenAddr != "" {
		cfg.ListenAddr = s.ListenAddr
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// APIKeyPath returns the path to the fallback API key file.
func (c *Config) APIKeyPath() string {
	return filepath.Join(c.Dir, APIKeyFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// APIKey returns the model API key: the environment variable wins, then
// the key file in the config directory. Empty means not configured.
func (c *Config) APIKey() string {
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	data, err := os.ReadFile(c.APIKeyPath())
	if err != nil {
		return ""
	}
	return string(bytes.TrimSpace(data))
}

// HasAPIKey checks whether an API key is available.
func (c *Config) HasAPIKey() bool {
	return c.APIKey() != ""
}
