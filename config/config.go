package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Redis struct {
		Host       string `mapstructure:"host"`
		Port       string `mapstructure:"port"`
		Password   string `mapstructure:"password"`
		DB         int    `mapstructure:"db"`
		TTLSeconds int    `mapstructure:"ttl_seconds"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey                string `mapstructure:"secret_key"`
		Algorithm                string `mapstructure:"algorithm"`
		AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
	} `mapstructure:"jwt"`
	Refresh struct {
		ExpireDays             int `mapstructure:"expire_days"`
		ExtendDays             int `mapstructure:"extend_days"`
		CleanupIntervalMinutes int `mapstructure:"cleanup_interval_minutes"`
	} `mapstructure:"refresh"`
	Security struct {
		BcryptCost int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"security"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

var AppConfig Config

var supportedAlgorithms = map[string]bool{"HS256": true, "HS384": true, "HS512": true}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl_seconds", 300)
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.access_token_expire_minutes", 30)
	v.SetDefault("refresh.expire_days", 7)
	v.SetDefault("refresh.extend_days", 7)
	v.SetDefault("refresh.cleanup_interval_minutes", 60)
	v.SetDefault("security.bcrypt_cost", 12)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Registering the secret lets AutomaticEnv pick up JWT_SECRET_KEY during Unmarshal.
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("redis.password", "")
}

// Load reads config.yml from path (if present) and the environment into a Config.
// Environment variables use the upper-cased key with dots replaced, e.g. JWT_SECRET_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// LoadConfig populates AppConfig and aborts the process on failure.
func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error loading config, %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config, %s", err)
	}
	AppConfig = *cfg
}

// Validate rejects settings the token and hashing layers cannot operate with.
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key must be set")
	}
	if !supportedAlgorithms[c.JWT.Algorithm] {
		return fmt.Errorf("unsupported jwt.algorithm %q", c.JWT.Algorithm)
	}
	if c.JWT.AccessTokenExpireMinutes <= 0 {
		return errors.New("jwt.access_token_expire_minutes must be positive")
	}
	if c.Refresh.ExpireDays <= 0 || c.Refresh.ExtendDays <= 0 {
		return errors.New("refresh.expire_days and refresh.extend_days must be positive")
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("security.bcrypt_cost %d out of range 4..31", c.Security.BcryptCost)
	}
	if c.Refresh.CleanupIntervalMinutes < 0 {
		return errors.New("refresh.cleanup_interval_minutes must not be negative")
	}
	return nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpireMinutes) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.Refresh.ExpireDays) * 24 * time.Hour
}

func (c *Config) RefreshExtendWindow() time.Duration {
	return time.Duration(c.Refresh.ExtendDays) * 24 * time.Hour
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}
