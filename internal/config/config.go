// Package config provides application configuration through environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// ConfigDir holds .env.local, .env and the manifest.
	ConfigDir string
	// ManifestFile is the secrets manifest, relative to ConfigDir unless absolute.
	ManifestFile string

	// MasterKeyFile is the age identity file.
	MasterKeyFile string
	// MasterKeyKeyring enables reading the master key from the OS keyring.
	MasterKeyKeyring bool
	// MasterKeyKMSURI seals the master key file with a KMS key (e.g., "awskms://...").
	MasterKeyKMSURI string

	S3Bucket          string
	S3Region          string
	S3Prefix          string
	S3Endpoint        string
	S3ForcePathStyle  bool
	S3Profile         string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// CacheEnabled enables the local plaintext cache for S3 secrets.
	CacheEnabled bool
	// CacheDir defaults to ~/.sindri/cache/secrets when empty.
	CacheDir string
	// CacheTTL bounds how long a cached value is served.
	CacheTTL time.Duration

	VaultAddr             string
	VaultToken            string
	VaultNamespace        string
	VaultTimeout          time.Duration
	VaultSkipVerify       bool
	VaultRoleID           string
	VaultSecretID         string
	VaultK8sRole          string
	VaultK8sJWTPath       string
	VaultRetryMaxAttempts int

	// ResolveTimeout is the deadline for one resolution call.
	ResolveTimeout time.Duration
	// ResolveConcurrency bounds concurrent source lookups.
	ResolveConcurrency int
	// ResolveRateLimitPerSec limits Vault and S3 dispatches per second.
	ResolveRateLimitPerSec float64
	// ResolveRateLimitBurst is the burst size for backend dispatches.
	ResolveRateLimitBurst int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is written in Prometheus text format at shutdown when set.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// General
		LogLevel:     env.GetString("LOG_LEVEL", "info"),
		ConfigDir:    env.GetString("CONFIG_DIR", "."),
		ManifestFile: env.GetString("MANIFEST_FILE", "sindri.yaml"),

		// Master key
		MasterKeyFile:    env.GetString("MASTER_KEY_FILE", ".sindri-master.key"),
		MasterKeyKeyring: env.GetBool("MASTER_KEY_KEYRING", false),
		MasterKeyKMSURI:  env.GetString("MASTER_KEY_KMS_URI", ""),

		// S3
		S3Bucket:          env.GetString("S3_BUCKET", ""),
		S3Region:          env.GetString("S3_REGION", "us-east-1"),
		S3Prefix:          env.GetString("S3_PREFIX", "secrets/"),
		S3Endpoint:        env.GetString("S3_ENDPOINT", ""),
		S3ForcePathStyle:  env.GetBool("S3_FORCE_PATH_STYLE", false),
		S3Profile:         env.GetString("S3_PROFILE", ""),
		S3AccessKeyID:     env.GetString("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: env.GetString("S3_SECRET_ACCESS_KEY", ""),

		// Cache
		CacheEnabled: env.GetBool("CACHE_ENABLED", true),
		CacheDir:     env.GetString("CACHE_DIR", ""),
		CacheTTL:     env.GetDuration("CACHE_TTL_SECONDS", 3600, time.Second),

		// Vault
		VaultAddr:             env.GetString("VAULT_ADDR", ""),
		VaultToken:            env.GetString("VAULT_TOKEN", ""),
		VaultNamespace:        env.GetString("VAULT_NAMESPACE", ""),
		VaultTimeout:          env.GetDuration("VAULT_TIMEOUT_SECONDS", 30, time.Second),
		VaultSkipVerify:       env.GetBool("VAULT_SKIP_VERIFY", false),
		VaultRoleID:           env.GetString("VAULT_ROLE_ID", ""),
		VaultSecretID:         env.GetString("VAULT_SECRET_ID", ""),
		VaultK8sRole:          env.GetString("VAULT_K8S_ROLE", ""),
		VaultK8sJWTPath:       env.GetString("VAULT_K8S_JWT_PATH", ""),
		VaultRetryMaxAttempts: env.GetInt("VAULT_RETRY_MAX_ATTEMPTS", 3),

		// Resolution
		ResolveTimeout:         env.GetDuration("RESOLVE_TIMEOUT_SECONDS", 30, time.Second),
		ResolveConcurrency:     env.GetInt("RESOLVE_CONCURRENCY", 8),
		ResolveRateLimitPerSec: env.GetFloat64("RESOLVE_RATE_LIMIT_PER_SEC", 20.0),
		ResolveRateLimitBurst:  env.GetInt("RESOLVE_RATE_LIMIT_BURST", 10),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "sindri_secrets"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// GetLogLevel maps LogLevel to a slog level. Unknown values are info.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ManifestPath returns the manifest location, anchored at ConfigDir when relative.
func (c *Config) ManifestPath() string {
	if filepath.IsAbs(c.ManifestFile) {
		return c.ManifestFile
	}
	return filepath.Join(c.ConfigDir, c.ManifestFile)
}

// VaultConfigured reports whether a Vault address is set.
func (c *Config) VaultConfigured() bool {
	return c.VaultAddr != ""
}

// S3Configured reports whether an S3 bucket is set.
func (c *Config) S3Configured() bool {
	return c.S3Bucket != ""
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
