package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (token blacklist); empty address keeps revocations in memory
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Storage configuration
	StorageDriver    string `mapstructure:"STORAGE_DRIVER"`
	StorageLocalRoot string `mapstructure:"STORAGE_LOCAL_ROOT"`
	StoragePublicURL string `mapstructure:"STORAGE_PUBLIC_URL"`
	S3Endpoint       string `mapstructure:"S3_ENDPOINT"`
	S3Region         string `mapstructure:"S3_REGION"`
	S3Bucket         string `mapstructure:"S3_BUCKET"`
	S3AccessKey      string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey      string `mapstructure:"S3_SECRET_KEY"`
	S3UsePathStyle   bool   `mapstructure:"S3_USE_PATH_STYLE"`
	MaxUploadMB      int    `mapstructure:"MAX_UPLOAD_MB"`

	// Social login user-info endpoints
	GoogleUserInfoURL   string `mapstructure:"GOOGLE_USERINFO_URL"`
	FacebookUserInfoURL string `mapstructure:"FACEBOOK_USERINFO_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "dealspace")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 60*24)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Redis defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Storage defaults
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_LOCAL_ROOT", "./storage")
	viper.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:8000/storage")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_USE_PATH_STYLE", false)
	viper.SetDefault("MAX_UPLOAD_MB", 20)

	// Social login defaults
	viper.SetDefault("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v3/userinfo")
	viper.SetDefault("FACEBOOK_USERINFO_URL", "https://graph.facebook.com/me?fields=id,name,email,picture")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.StorageDriver {
	case "local":
		if config.StorageLocalRoot == "" {
			return fmt.Errorf("STORAGE_LOCAL_ROOT is required for the local storage driver")
		}
	case "s3":
		if config.S3Bucket == "" || config.S3AccessKey == "" || config.S3SecretKey == "" {
			return fmt.Errorf("S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY are required for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", config.StorageDriver)
	}

	if config.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
