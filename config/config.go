package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Server    ServerConfig
	Workspace WorkspaceConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	Snapshot  SnapshotConfig
	App       AppConfig
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// honoured. Empty means client IPs come from the connection only.
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type WorkspaceConfig struct {
	Path          string
	ViewURLPrefix string
	CacheSize     int
}

// RedisConfig is optional; snapshot publishing is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig is optional; the Postgres snapshot archive is disabled
// when Host is empty.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ScheduleParser parses SNAPSHOT_CRON. The seconds field is optional.
var ScheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type SnapshotConfig struct {
	TTL  time.Duration
	Cron string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
			TrustedProxies:   getEnvAsList("TRUSTED_PROXIES", nil),
			RateLimitRPS:     getEnvAsFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Workspace: WorkspaceConfig{
			Path:          getEnv("WORKSPACE_PATH", "workspace.yaml"),
			ViewURLPrefix: getEnv("VIEW_URL_PREFIX", ""),
			CacheSize:     getEnvAsInt("DIAGRAM_CACHE_SIZE", 256),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "c4model"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Snapshot: SnapshotConfig{
			TTL:  getEnvAsDuration("SNAPSHOT_TTL", 24*time.Hour),
			Cron: getEnv("SNAPSHOT_CRON", "0 */30 * * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Workspace.Path == "" {
		return fmt.Errorf("WORKSPACE_PATH is required")
	}

	if c.Workspace.CacheSize < 0 {
		return fmt.Errorf("DIAGRAM_CACHE_SIZE must not be negative")
	}

	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	if c.SnapshotsEnabled() {
		if _, err := ScheduleParser.Parse(c.Snapshot.Cron); err != nil {
			return fmt.Errorf("invalid SNAPSHOT_CRON %q: %w", c.Snapshot.Cron, err)
		}
	}

	if c.ArchiveEnabled() {
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required when DB_HOST is set")
		}
		if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
			return fmt.Errorf("DB_DRIVER must be postgres or pgx")
		}
	}

	return nil
}

// RedisEnabled reports whether diagrams are published to Redis.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// ArchiveEnabled reports whether diagrams are archived in Postgres.
func (c *Config) ArchiveEnabled() bool {
	return c.Database.Host != ""
}

// SnapshotsEnabled reports whether any snapshot store is configured.
func (c *Config) SnapshotsEnabled() bool {
	return c.RedisEnabled() || c.ArchiveEnabled()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
