package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Download DownloadConfig
	Cleanup  CleanupConfig
	Mirror   MirrorConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	StaticDir       string
	ShutdownTimeout time.Duration
}

type DownloadConfig struct {
	Dir            string
	Workers        int
	Format         string
	OutputTemplate string
	AutoInstall    bool
	ProbeTimeout   time.Duration
}

type CleanupConfig struct {
	Schedule string // cron spec, seconds field included
	MaxAge   time.Duration
}

// MirrorConfig enables uploading finished artifacts to S3 when Bucket is set.
type MirrorConfig struct {
	Bucket string
	Region string
	Prefix string
}

type LogConfig struct {
	Level  string
	Format string
	Locale string
}

// LoadConfig reads an optional .env file and the process environment.
func LoadConfig() *Config {
	// .env is optional, defaults cover everything
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			StaticDir:       getEnv("STATIC_DIR", "static"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Download: DownloadConfig{
			Dir:            getEnv("DOWNLOAD_DIR", "downloads"),
			Workers:        getEnvAsInt("DOWNLOAD_WORKERS", 4),
			Format:         getEnv("DOWNLOAD_FORMAT", "best"),
			OutputTemplate: getEnv("OUTPUT_TEMPLATE", "%(title)s.%(ext)s"),
			AutoInstall:    getEnvAsBool("YTDLP_AUTO_INSTALL", false),
			ProbeTimeout:   getEnvAsDuration("PROBE_TIMEOUT", 60*time.Second),
		},
		Cleanup: CleanupConfig{
			Schedule: getEnv("CLEANUP_SCHEDULE", "0 */5 * * * *"),
			MaxAge:   getEnvAsDuration("CLEANUP_MAX_AGE", 24*time.Hour),
		},
		Mirror: MirrorConfig{
			Bucket: getEnv("ARTIFACT_S3_BUCKET", ""),
			Region: getEnv("ARTIFACT_S3_REGION", "us-east-1"),
			Prefix: getEnv("ARTIFACT_S3_PREFIX", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			Locale: getEnv("LOCALE", "en"),
		},
	}
}

// EnsureDirs creates the storage and static directories. The artifact lister
// assumes the storage directory exists, so this must run before serving.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Download.Dir, c.Server.StaticDir} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func ensureDir(dir string) error {
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = filepath.Join(wd, dir)
	}
	return os.MkdirAll(dir, 0755)
}
