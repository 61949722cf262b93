package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Upload   UploadConfig
	Splitter SplitterConfig
	Cache    CacheConfig
	Archive  ArchiveConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings. A single "*" entry allows every origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig bounds what a single upload request may carry.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// MaxFileBytes returns the per-file limit in bytes.
func (u *UploadConfig) MaxFileBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// SplitterConfig selects the sentence segmentation engine.
type SplitterConfig struct {
	Engine            string `mapstructure:"engine"`
	PunktTrainingPath string `mapstructure:"punkt_training_path"`
	PunktTrainingURL  string `mapstructure:"punkt_training_url"`
}

// CacheConfig holds Redis sentence cache settings.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	PoolSize int           `mapstructure:"pool_size"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ArchiveConfig holds settings for archiving raw uploads to S3.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// MetricsConfig toggles the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the SENTSPLIT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SENTSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("cors.allowed_origins", "*")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.max_files", 20)

	// Splitter defaults
	v.SetDefault("splitter.engine", "regex")
	v.SetDefault("splitter.punkt_training_path", "")
	v.SetDefault("splitter.punkt_training_url", "")

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.pool_size", 10)
	v.SetDefault("cache.ttl", "1h")

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "sentsplit-uploads")
	v.SetDefault("archive.endpoint", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "SENTSPLIT_SERVER_PORT",
		"server.read_timeout":          "SENTSPLIT_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "SENTSPLIT_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":      "SENTSPLIT_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":           "SENTSPLIT_SERVER_ENVIRONMENT",
		"log.level":                    "SENTSPLIT_LOG_LEVEL",
		"log.format":                   "SENTSPLIT_LOG_FORMAT",
		"cors.allowed_origins":         "SENTSPLIT_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":      "SENTSPLIT_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":             "SENTSPLIT_UPLOAD_MAX_FILES",
		"splitter.engine":              "SENTSPLIT_SPLITTER_ENGINE",
		"splitter.punkt_training_path": "SENTSPLIT_SPLITTER_PUNKT_TRAINING_PATH",
		"splitter.punkt_training_url":  "SENTSPLIT_SPLITTER_PUNKT_TRAINING_URL",
		"cache.enabled":                "SENTSPLIT_CACHE_ENABLED",
		"cache.addr":                   "SENTSPLIT_CACHE_ADDR",
		"cache.password":               "SENTSPLIT_CACHE_PASSWORD",
		"cache.db":                     "SENTSPLIT_CACHE_DB",
		"cache.pool_size":              "SENTSPLIT_CACHE_POOL_SIZE",
		"cache.ttl":                    "SENTSPLIT_CACHE_TTL",
		"archive.enabled":              "SENTSPLIT_ARCHIVE_ENABLED",
		"archive.region":               "SENTSPLIT_ARCHIVE_REGION",
		"archive.bucket":               "SENTSPLIT_ARCHIVE_BUCKET",
		"archive.endpoint":             "SENTSPLIT_ARCHIVE_ENDPOINT",
		"archive.access_key":           "SENTSPLIT_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":           "SENTSPLIT_ARCHIVE_SECRET_KEY",
		"metrics.enabled":              "SENTSPLIT_METRICS_ENABLED",
		"metrics.path":                 "SENTSPLIT_METRICS_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SENTSPLIT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SENTSPLIT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
	}
	cfg.Splitter = SplitterConfig{
		Engine:            strings.ToLower(strings.TrimSpace(v.GetString("splitter.engine"))),
		PunktTrainingPath: v.GetString("splitter.punkt_training_path"),
		PunktTrainingURL:  v.GetString("splitter.punkt_training_url"),
	}
	cfg.Cache = CacheConfig{
		Enabled:  v.GetBool("cache.enabled"),
		Addr:     v.GetString("cache.addr"),
		Password: v.GetString("cache.password"),
		DB:       v.GetInt("cache.db"),
		PoolSize: v.GetInt("cache.pool_size"),
		TTL:      v.GetDuration("cache.ttl"),
	}
	cfg.Archive = ArchiveConfig{
		Enabled:   v.GetBool("archive.enabled"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
