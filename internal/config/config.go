package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Monorail    MonorailConfig    `yaml:"monorail"`
	Blockvision BlockvisionConfig `yaml:"blockvision"`
	Etherscan   EtherscanConfig   `yaml:"etherscan"`
	Rpc         RpcConfig         `yaml:"rpc"`
	Cache       CacheConfig       `yaml:"cache"`
	Prices      PricesConfig      `yaml:"prices"`
	Cors        CorsConfig        `yaml:"cors"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// MonorailConfig holds the configuration for the Monorail market-data API.
type MonorailConfig struct {
	BaseURL              string `yaml:"baseURL"`
	Identifier           string `yaml:"identifier"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// BlockvisionConfig holds the configuration for the Blockvision indexer API.
type BlockvisionConfig struct {
	BaseURL              string `yaml:"baseURL"`
	ApiKey               string `yaml:"apiKey"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// EtherscanConfig holds the configuration for the block-explorer API.
type EtherscanConfig struct {
	BaseURL              string `yaml:"baseURL"`
	ApiKey               string `yaml:"apiKey"`
	ChainID              int64  `yaml:"chainID"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// RpcConfig holds the configuration for the JSON-RPC endpoint.
type RpcConfig struct {
	URL                  string `yaml:"url"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// CacheConfig holds configuration for the token record cache.
type CacheConfig struct {
	MaxEntries int `yaml:"maxEntries"`
	TTLHours   int `yaml:"ttlHours"`
}

// PricesConfig holds configuration for the price endpoints cache.
type PricesConfig struct {
	MonTTLSeconds int `yaml:"monTTLSeconds"`
	GasTTLSeconds int `yaml:"gasTTLSeconds"`
}

// CorsConfig holds the allowed CORS origins.
type CorsConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// LoadConfig loads configuration from a YAML file, applies defaults for
// absent fields and lets environment variables override the secrets.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":3001"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30
	}
	if cfg.Server.WriteTimeout == 0 {
		// Holder pagination of large tokens can take a while, keep the
		// write timeout generous.
		cfg.Server.WriteTimeout = 180
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Monorail.BaseURL == "" {
		cfg.Monorail.BaseURL = "https://testnet-api.monorail.xyz/v1"
		logrus.Infof("Monorail.BaseURL not set, defaulting to %s", cfg.Monorail.BaseURL)
	}
	if cfg.Monorail.RequestTimeoutMillis == 0 {
		cfg.Monorail.RequestTimeoutMillis = 10000
	}

	if cfg.Blockvision.BaseURL == "" {
		cfg.Blockvision.BaseURL = "https://api.blockvision.org/v2/monad"
		logrus.Infof("Blockvision.BaseURL not set, defaulting to %s", cfg.Blockvision.BaseURL)
	}
	if cfg.Blockvision.RequestTimeoutMillis == 0 {
		cfg.Blockvision.RequestTimeoutMillis = 10000
	}

	if cfg.Etherscan.BaseURL == "" {
		cfg.Etherscan.BaseURL = "https://api.etherscan.io/v2/api"
	}
	if cfg.Etherscan.ChainID == 0 {
		cfg.Etherscan.ChainID = 10143 // Monad testnet
	}
	if cfg.Etherscan.RequestTimeoutMillis == 0 {
		cfg.Etherscan.RequestTimeoutMillis = 10000
	}

	if cfg.Rpc.RequestTimeoutMillis == 0 {
		cfg.Rpc.RequestTimeoutMillis = 10000
	}

	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = 100
	}
	if cfg.Cache.TTLHours == 0 {
		cfg.Cache.TTLHours = 24
	}

	if cfg.Prices.MonTTLSeconds == 0 {
		cfg.Prices.MonTTLSeconds = 60
	}
	if cfg.Prices.GasTTLSeconds == 0 {
		cfg.Prices.GasTTLSeconds = 5
	}

	if len(cfg.Cors.AllowedOrigins) == 0 {
		cfg.Cors.AllowedOrigins = []string{"https://montoks.xyz", "http://localhost:3000"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = ":" + v
	}
	if v := os.Getenv("MONORAIL_API_BASE"); v != "" {
		cfg.Monorail.BaseURL = v
	}
	if v := os.Getenv("MONORAIL_IDENTIFIER"); v != "" {
		cfg.Monorail.Identifier = v
	}
	if v := os.Getenv("BLOCKVISION_API_BASE"); v != "" {
		cfg.Blockvision.BaseURL = v
	}
	if v := os.Getenv("BLOCKVISION_API_KEY"); v != "" {
		cfg.Blockvision.ApiKey = v
	}
	if v := os.Getenv("ETHERSCAN_API_KEY"); v != "" {
		cfg.Etherscan.ApiKey = v
	}
	if v := os.Getenv("QUICKNODE_RPC_URL"); v != "" {
		cfg.Rpc.URL = v
	}
}
