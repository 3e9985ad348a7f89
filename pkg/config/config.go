package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("SPEECHPREP")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		return fmt.Errorf("database path is required")
	}

	backend := viper.GetString("storage.backend")
	switch backend {
	case "filesystem":
		if viper.GetString("storage.base_path") == "" {
			return fmt.Errorf("storage.base_path is required for the filesystem backend")
		}
	case "minio":
		if viper.GetString("storage.minio.endpoint") == "" {
			return fmt.Errorf("storage.minio.endpoint is required for the minio backend")
		}
	case "supabase":
		if viper.GetString("storage.supabase.url") == "" {
			return fmt.Errorf("storage.supabase.url is required for the supabase backend")
		}
	default:
		return fmt.Errorf("unknown storage backend: %q", backend)
	}

	switch viper.GetString("denoise.backend") {
	case "deepfilter", "off":
	default:
		return fmt.Errorf("unknown denoise backend: %q", viper.GetString("denoise.backend"))
	}

	if viper.GetString("transcription.service_url") == "" {
		return fmt.Errorf("transcription.service_url is required")
	}

	// Auto-correct a missing transcription timeout
	if viper.GetDuration("transcription.timeout") <= 0 {
		viper.Set("transcription.timeout", 60*time.Second)
	}

	if viper.GetString("auth.jwt_secret") == "" && viper.GetString("environment") == "production" {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Transcription.Timeout <= 0 {
		c.Transcription.Timeout = 60 * time.Second
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/speechprep.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.backend", "filesystem")
	viper.SetDefault("storage.base_path", "./data/blobs")
	viper.SetDefault("storage.temp_dir", "./data/tmp")
	viper.SetDefault("storage.bucket", "audio-files")
	viper.SetDefault("storage.minio.endpoint", "")
	viper.SetDefault("storage.minio.access_key", "")
	viper.SetDefault("storage.minio.secret_key", "")
	viper.SetDefault("storage.minio.use_ssl", false)
	viper.SetDefault("storage.supabase.url", "")
	viper.SetDefault("storage.supabase.service_role_key", "")

	// Denoise defaults
	viper.SetDefault("denoise.backend", "deepfilter")
	viper.SetDefault("denoise.binary_path", "deepFilter")

	// Transcription defaults
	viper.SetDefault("transcription.service_url", "http://localhost:8000")
	viper.SetDefault("transcription.timeout", 60*time.Second)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "")
}
