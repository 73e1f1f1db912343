package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/datocms-community/datocms-mcp/internal/constants"
)

// ErrTokenRequired is returned when configure is run non-interactively
// without a token.
var ErrTokenRequired = errors.New("an API token is required")

// Config is the persisted CLI configuration.
type Config struct {
	// APIToken is a default CMA token, used by tools when the MCP client
	// supplies none. Per-call tokens always win.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// APIEndpoint overrides the CMA base URL.
	APIEndpoint string `json:"api_endpoint,omitempty" yaml:"api_endpoint,omitempty"`

	// Environment pins a default sandbox environment.
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`

	// Output is the CLI output format (table, json, yaml).
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Cache configures CMA response caching for GET requests.
	Cache CacheSettings `json:"cache,omitempty" yaml:"cache,omitempty"`

	// UpdatedAt records the last configure run.
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// CacheSettings selects and configures a cache backend.
type CacheSettings struct {
	// Backend is one of "memory", "nats", or "none". Empty means memory.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`

	// MaxSize bounds the memory backend's entry count.
	MaxSize int `json:"max_size,omitempty" yaml:"max_size,omitempty"`

	// NATSURL is the NATS server URL for the nats backend.
	NATSURL string `json:"nats_url,omitempty" yaml:"nats_url,omitempty"`

	// NATSBucket is the JetStream KV bucket name for the nats backend.
	NATSBucket string `json:"nats_bucket,omitempty" yaml:"nats_bucket,omitempty"`

	// TTL is the entry lifetime, e.g. "5m".
	TTL time.Duration `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// debugEnabled reports whether debug mode is active, from the flag, the
// environment, or the config file.
func debugEnabled() bool {
	return viper.GetBool("debug")
}

// loadConfig builds the effective configuration from viper, which has
// already merged the config file, environment variables, and flags.
func loadConfig() *Config {
	return &Config{
		APIToken:    viper.GetString("api_token"),
		APIEndpoint: viper.GetString("api_endpoint"),
		Environment: viper.GetString("environment"),
		Output:      viper.GetString("output"),
		Cache: CacheSettings{
			Backend:    viper.GetString("cache.backend"),
			MaxSize:    viper.GetInt("cache.max_size"),
			NATSURL:    viper.GetString("cache.nats_url"),
			NATSBucket: viper.GetString("cache.nats_bucket"),
			TTL:        viper.GetDuration("cache.ttl"),
		},
	}
}

// saveConfig writes the configuration to the active config file, creating
// ~/.datocms-mcp/config.yml when none is in use. The file holds a token, so
// it is written owner-readable only.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".datocms-mcp")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	now := time.Now()
	config.UpdatedAt = &now

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
