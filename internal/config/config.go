package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Search   SearchConfig
	Auth     AuthConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PopularCacheTTL   time.Duration
	DivisionsCacheTTL time.Duration
}

type SearchConfig struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	DefaultLimit    int
	MaxLimit        int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           viper.GetString("API_HOST"),
			Port:           viper.GetInt("API_PORT"),
			Env:            viper.GetString("API_ENV"),
			AllowedOrigins: viper.GetString("API_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PopularCacheTTL:   time.Duration(viper.GetInt("POPULAR_CACHE_TTL")) * time.Second,
			DivisionsCacheTTL: time.Duration(viper.GetInt("DIVISIONS_CACHE_TTL")) * time.Second,
		},
		Search: SearchConfig{
			DefaultRadiusKm: viper.GetFloat64("SEARCH_DEFAULT_RADIUS_KM"),
			MaxRadiusKm:     viper.GetFloat64("SEARCH_MAX_RADIUS_KM"),
			DefaultLimit:    viper.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:        viper.GetInt("SEARCH_MAX_LIMIT"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(viper.GetInt("JWT_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.PopularCacheTTL == 0 {
		cfg.Cache.PopularCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.DivisionsCacheTTL == 0 {
		cfg.Cache.DivisionsCacheTTL = time.Hour
	}
	if cfg.Search.DefaultRadiusKm == 0 {
		cfg.Search.DefaultRadiusKm = 10
	}
	if cfg.Search.MaxRadiusKm == 0 {
		cfg.Search.MaxRadiusKm = 50
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 20
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
