package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Denoise       DenoiseConfig       `mapstructure:"denoise"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
	Auth          AuthConfig          `mapstructure:"auth"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds SQLite database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig holds object storage settings for raw and cleaned audio
type StorageConfig struct {
	// Backend selects the blob store implementation: filesystem, minio or supabase
	Backend  string         `mapstructure:"backend"`
	BasePath string         `mapstructure:"base_path"` // Filesystem backend root
	TempDir  string         `mapstructure:"temp_dir"`  // Scratch space for pipeline temp files
	Bucket   string         `mapstructure:"bucket"`
	Minio    MinioConfig    `mapstructure:"minio"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
}

// MinioConfig holds MinIO/S3 connection settings
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// SupabaseConfig holds Supabase storage connection settings
type SupabaseConfig struct {
	URL            string `mapstructure:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
}

// DenoiseConfig holds noise reduction settings
type DenoiseConfig struct {
	// Backend selects the denoiser implementation: deepfilter or off
	Backend    string `mapstructure:"backend"`
	BinaryPath string `mapstructure:"binary_path"`
}

// TranscriptionConfig holds ASR service settings
type TranscriptionConfig struct {
	ServiceURL string        `mapstructure:"service_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	// JWTSecret verifies Supabase HS256 access tokens. When empty, the
	// server falls back to the X-User-ID header (development only).
	JWTSecret string `mapstructure:"jwt_secret"`
}
