package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	JWT      JWTConfig      `yaml:"jwt"`
	S3       S3Config       `yaml:"s3"`
	CORS     CORSConfig     `yaml:"cors"`
	App      AppConfig      `yaml:"app"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// GetDSN returns DATABASE_URL when set, otherwise a key/value postgres DSN
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Addr returns host:port, or "" when redis is not configured
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AuthConfig struct {
	ServiceURL string        `yaml:"service_url"`
	Timeout    time.Duration `yaml:"timeout"`
	CookieName string        `yaml:"cookie_name"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins"`
}

// Origins splits the comma separated origin list
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type AppConfig struct {
	StatsCacheTTL   time.Duration `yaml:"stats_cache_ttl"`
	PhotoUploadTTL  time.Duration `yaml:"photo_upload_ttl"`
	CleanupSchedule string        `yaml:"cleanup_schedule"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            "8080",
			Mode:            "debug",
			BasePath:        "/api",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "dive_globe",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Port: 6379,
		},
		Auth: AuthConfig{
			Timeout:    5 * time.Second,
			CookieName: "dg-auth-token",
		},
		CORS: CORSConfig{
			AllowedOrigins: "http://localhost:3000",
		},
		App: AppConfig{
			StatsCacheTTL:   5 * time.Minute,
			PhotoUploadTTL:  24 * time.Hour,
			CleanupSchedule: "@every 1h",
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Auth.ServiceURL == "" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("either auth.service_url or jwt.secret must be configured")
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables
func applyEnv(cfg *Config) {
	setString("PORT", &cfg.Server.Port)
	setString("GIN_MODE", &cfg.Server.Mode)
	setString("SERVER_BASE_PATH", &cfg.Server.BasePath)
	setString("LOG_LEVEL", &cfg.Logger.Level)

	setString("DATABASE_URL", &cfg.Database.URL)
	setString("DB_HOST", &cfg.Database.Host)
	setInt("DB_PORT", &cfg.Database.Port)
	setString("DB_USER", &cfg.Database.User)
	setString("DB_PASSWORD", &cfg.Database.Password)
	setString("DB_NAME", &cfg.Database.Name)
	setString("DB_SSL_MODE", &cfg.Database.SSLMode)
	setInt("DB_MAX_OPEN_CONNS", &cfg.Database.MaxOpenConns)
	setInt("DB_MAX_IDLE_CONNS", &cfg.Database.MaxIdleConns)

	setString("REDIS_URL", &cfg.Redis.URL)
	setString("REDIS_HOST", &cfg.Redis.Host)
	setInt("REDIS_PORT", &cfg.Redis.Port)
	setString("REDIS_PASSWORD", &cfg.Redis.Password)
	setInt("REDIS_DB", &cfg.Redis.DB)

	setString("AUTH_SERVICE_URL", &cfg.Auth.ServiceURL)
	setString("AUTH_COOKIE_NAME", &cfg.Auth.CookieName)
	setString("JWT_SECRET", &cfg.JWT.Secret)

	setString("S3_BUCKET", &cfg.S3.Bucket)
	setString("S3_REGION", &cfg.S3.Region)
	setString("S3_ENDPOINT", &cfg.S3.Endpoint)
	setString("S3_ACCESS_KEY", &cfg.S3.AccessKey)
	setString("S3_SECRET_KEY", &cfg.S3.SecretKey)
	setString("S3_PUBLIC_BASE_URL", &cfg.S3.PublicBaseURL)

	setString("CORS_ORIGINS", &cfg.CORS.AllowedOrigins)

	setDuration("STATS_CACHE_TTL", &cfg.App.StatsCacheTTL)
	setDuration("PHOTO_UPLOAD_TTL", &cfg.App.PhotoUploadTTL)
	setString("CLEANUP_SCHEDULE", &cfg.App.CleanupSchedule)
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
