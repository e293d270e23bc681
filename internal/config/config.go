package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	S3     S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	SSLMode        string `mapstructure:"sslmode"`
	MaxOpen        int    `mapstructure:"max_open"`
	MaxIdle        int    `mapstructure:"max_idle"`
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AllowAll reports whether every origin is accepted.
func (c *CORSConfig) AllowAll() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

// S3Config holds object storage settings for shared exports.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Prefix        string `mapstructure:"prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether exports can be shared through object storage.
func (s *S3Config) Enabled() bool {
	return strings.TrimSpace(s.Bucket) != ""
}

// Load reads configuration from environment variables with the CYLTRACK_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CYLTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("store.driver", StoreDriverPostgres)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cylindertrack")
	v.SetDefault("db.password", "cylindertrack_secret")
	v.SetDefault("db.name", "cylindertrack")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.migrate_on_start", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("cors.allowed_origins", "*")

	// S3 defaults; an empty bucket disables sharing
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "exports")
	v.SetDefault("s3.presign_expiry", 3600)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CYLTRACK_SERVER_PORT",
		"server.read_timeout":  "CYLTRACK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CYLTRACK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CYLTRACK_SERVER_ENVIRONMENT",
		"store.driver":         "CYLTRACK_STORE_DRIVER",
		"db.host":              "CYLTRACK_DB_HOST",
		"db.port":              "CYLTRACK_DB_PORT",
		"db.user":              "CYLTRACK_DB_USER",
		"db.password":          "CYLTRACK_DB_PASSWORD",
		"db.name":              "CYLTRACK_DB_NAME",
		"db.sslmode":           "CYLTRACK_DB_SSLMODE",
		"db.max_open":          "CYLTRACK_DB_MAX_OPEN",
		"db.max_idle":          "CYLTRACK_DB_MAX_IDLE",
		"db.migrate_on_start":  "CYLTRACK_DB_MIGRATE_ON_START",
		"log.level":            "CYLTRACK_LOG_LEVEL",
		"log.format":           "CYLTRACK_LOG_FORMAT",
		"cors.allowed_origins": "CYLTRACK_CORS_ALLOWED_ORIGINS",
		"s3.region":            "CYLTRACK_S3_REGION",
		"s3.bucket":            "CYLTRACK_S3_BUCKET",
		"s3.endpoint":          "CYLTRACK_S3_ENDPOINT",
		"s3.access_key":        "CYLTRACK_S3_ACCESS_KEY",
		"s3.secret_key":        "CYLTRACK_S3_SECRET_KEY",
		"s3.prefix":            "CYLTRACK_S3_PREFIX",
		"s3.presign_expiry":    "CYLTRACK_S3_PRESIGN_EXPIRY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it unless CYLTRACK_SERVER_PORT is explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CYLTRACK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("store.driver")))
	if driver != StoreDriverPostgres && driver != StoreDriverMemory {
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	cfg.Store = StoreConfig{Driver: driver}

	cfg.DB = DBConfig{
		Host:           v.GetString("db.host"),
		Port:           v.GetInt("db.port"),
		User:           v.GetString("db.user"),
		Password:       v.GetString("db.password"),
		Name:           v.GetString("db.name"),
		SSLMode:        v.GetString("db.sslmode"),
		MaxOpen:        v.GetInt("db.max_open"),
		MaxIdle:        v.GetInt("db.max_idle"),
		MigrateOnStart: v.GetBool("db.migrate_on_start"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		Prefix:        strings.Trim(v.GetString("s3.prefix"), "/"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	return cfg, nil
}
