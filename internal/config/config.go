package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Log    LogConfig
	Mapbox MapboxConfig
	Map    MapConfig
	Search SearchConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled        bool
	SuggestionsTTL time.Duration
}

type LogConfig struct {
	Level string
}

// MapboxConfig - параметры доступа к Mapbox API
type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	RequestTimeout int // seconds
	RateLimit      float64
	RateBurst      int
	Language       string
	Limit          int
}

// MapConfig - параметры карты, которые отдаются клиенту и используются при загрузке
type MapConfig struct {
	Libraries   []string
	DefaultLat  float64
	DefaultLng  float64
	DefaultZoom int
	LoadTimeout time.Duration
}

type SearchConfig struct {
	BiasRadius float64 // meters
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален: в контейнере всё приходит через окружение
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			AllowOrigins: viper.GetString("API_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:        viper.GetBool("CACHE_ENABLED"),
			SuggestionsTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Mapbox: MapboxConfig{
			AccessToken:    viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        viper.GetString("MAPBOX_BASE_URL"),
			RequestTimeout: viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
			RateLimit:      viper.GetFloat64("MAPBOX_RATE_LIMIT"),
			RateBurst:      viper.GetInt("MAPBOX_RATE_BURST"),
			Language:       viper.GetString("MAPBOX_LANGUAGE"),
			Limit:          viper.GetInt("MAPBOX_SUGGESTION_LIMIT"),
		},
		Map: MapConfig{
			Libraries:   parseList(viper.GetString("MAP_LIBRARIES")),
			DefaultLat:  viper.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLng:  viper.GetFloat64("MAP_DEFAULT_LNG"),
			DefaultZoom: viper.GetInt("MAP_DEFAULT_ZOOM"),
			LoadTimeout: time.Duration(viper.GetInt("MAP_LOAD_TIMEOUT")) * time.Second,
		},
		Search: SearchConfig{
			BiasRadius: viper.GetFloat64("SEARCH_BIAS_RADIUS"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.AllowOrigins == "" {
		cfg.Server.AllowOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.SuggestionsTTL == 0 {
		cfg.Cache.SuggestionsTTL = 10 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Mapbox.BaseURL == "" {
		cfg.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if cfg.Mapbox.RequestTimeout == 0 {
		cfg.Mapbox.RequestTimeout = 10
	}
	if cfg.Mapbox.RateLimit == 0 {
		cfg.Mapbox.RateLimit = 10
	}
	if cfg.Mapbox.RateBurst == 0 {
		cfg.Mapbox.RateBurst = 5
	}
	if cfg.Mapbox.Language == "" {
		cfg.Mapbox.Language = "en"
	}
	if cfg.Mapbox.Limit == 0 {
		cfg.Mapbox.Limit = 5
	}
	if len(cfg.Map.Libraries) == 0 {
		cfg.Map.Libraries = []string{"places"}
	}
	if cfg.Map.DefaultLat == 0 && cfg.Map.DefaultLng == 0 {
		cfg.Map.DefaultLat = 40.738810
		cfg.Map.DefaultLng = -73.878380
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 8
	}
	if cfg.Map.LoadTimeout == 0 {
		cfg.Map.LoadTimeout = 15 * time.Second
	}
	if cfg.Search.BiasRadius == 0 {
		cfg.Search.BiasRadius = 200 * 1000
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
