package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Bailian  BailianConfig
	Qwen     QwenConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `default:"0.0.0.0"`
	Port            string        `default:"8080"`
	Environment     string        `default:"development"`
	AllowedOrigins  []string      `default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `default:"10s" split_words:"true"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `default:"localhost"`
	Port        string `default:"5432"`
	User        string `default:"postgres"`
	Password    string `default:"postgres"`
	Name        string `default:"meeting_manager"`
	SSLMode     string `default:"disable" envconfig:"SSLMODE"`
	MaxConns    int    `default:"25" split_words:"true"`
	MinConns    int    `default:"5" split_words:"true"`
	AutoMigrate bool   `default:"true" split_words:"true"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int `default:"0"`
}

// StorageConfig holds artifact storage configuration.
// Type selects the backend: "local" or "minio".
type StorageConfig struct {
	Type      string `default:"local"`
	LocalPath string `default:"./uploads" split_words:"true"`
	Endpoint  string
	AccessKey string `split_words:"true"`
	SecretKey string `split_words:"true"`
	Bucket    string `default:"meeting-artifacts"`
	UseSSL    bool   `default:"false" split_words:"true"`
}

// BailianConfig holds speech-to-text API configuration
type BailianConfig struct {
	APIKey         string        `split_words:"true"`
	BaseURL        string        `default:"https://dashscope.aliyuncs.com/bailian/v1" split_words:"true"`
	ConnectTimeout time.Duration `default:"10s" split_words:"true"`
	ReadTimeout    time.Duration `default:"60s" split_words:"true"`
}

// QwenConfig holds chat completion API configuration
type QwenConfig struct {
	APIKey         string        `split_words:"true"`
	BaseURL        string        `default:"https://dashscope.aliyuncs.com/bailian/v1" split_words:"true"`
	Model          string        `default:"qwen-max"`
	ConnectTimeout time.Duration `default:"10s" split_words:"true"`
	ReadTimeout    time.Duration `default:"60s" split_words:"true"`
}

// PipelineConfig holds processing pipeline configuration
type PipelineConfig struct {
	WorkerCount int           `default:"4" split_words:"true"`
	TaskTimeout time.Duration `default:"5m" split_words:"true"`
	CacheTTL    time.Duration `default:"10m" split_words:"true"`
}

// Load reads .env when present and builds the configuration from the
// environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration combinations that envconfig cannot express
func (c *Config) Validate() error {
	if c.Storage.Type != "local" && c.Storage.Type != "minio" {
		return fmt.Errorf("invalid STORAGE_TYPE %q (want local or minio)", c.Storage.Type)
	}
	if c.Storage.Type == "minio" {
		if c.Storage.Endpoint == "" || c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			return fmt.Errorf("minio storage requires STORAGE_ENDPOINT, STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY")
		}
	}
	if c.Pipeline.WorkerCount < 1 {
		return fmt.Errorf("PIPELINE_WORKER_COUNT must be at least 1")
	}
	return nil
}

// GetDatabaseDSN returns the PostgreSQL connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction checks if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
