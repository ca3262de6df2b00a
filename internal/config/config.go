package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Overpass OverpassConfig
	OpenSky  OpenSkyConfig
	Wikidata WikidataConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// OverpassConfig - настройки клиента Overpass API
type OverpassConfig struct {
	URL            string
	RequestTimeout time.Duration
}

// OpenSkyConfig - настройки сервиса поиска полётов
type OpenSkyConfig struct {
	URL            string
	RequestTimeout time.Duration
}

// WikidataConfig - настройки SPARQL-эндпойнта Wikidata
type WikidataConfig struct {
	URL            string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	FlightCacheTTL   time.Duration
	OverpassCacheTTL time.Duration
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
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Overpass: OverpassConfig{
			URL:            viper.GetString("OSM_OVERPASS_API_URL"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_REQUEST_TIMEOUT")) * time.Second,
		},
		OpenSky: OpenSkyConfig{
			URL:            viper.GetString("OPENSKY_API_URL"),
			RequestTimeout: time.Duration(viper.GetInt("OPENSKY_REQUEST_TIMEOUT")) * time.Second,
		},
		Wikidata: WikidataConfig{
			URL:            viper.GetString("WIKIDATA_SPARQL_URL"),
			RequestTimeout: time.Duration(viper.GetInt("WIKIDATA_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FlightCacheTTL:   time.Duration(viper.GetInt("FLIGHT_CACHE_TTL")) * time.Second,
			OverpassCacheTTL: time.Duration(viper.GetInt("OVERPASS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30 * time.Second
	}
	if cfg.OpenSky.URL == "" {
		cfg.OpenSky.URL = "https://opensky-network.org/api"
	}
	if cfg.OpenSky.RequestTimeout == 0 {
		cfg.OpenSky.RequestTimeout = 15 * time.Second
	}
	if cfg.Wikidata.URL == "" {
		cfg.Wikidata.URL = "https://query.wikidata.org/sparql"
	}
	if cfg.Wikidata.RequestTimeout == 0 {
		cfg.Wikidata.RequestTimeout = 30 * time.Second
	}
	if cfg.Cache.FlightCacheTTL == 0 {
		cfg.Cache.FlightCacheTTL = 30 * time.Second
	}
	if cfg.Cache.OverpassCacheTTL == 0 {
		cfg.Cache.OverpassCacheTTL = 5 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
