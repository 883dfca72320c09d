package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	RPCURL         string `mapstructure:"rpc_url"`
	PrivateKey     string `mapstructure:"private_key"`
	SlippageBps    uint64 `mapstructure:"slippage_bps"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	LogFile        string `mapstructure:"log_file"`
	DebugLogging   bool   `mapstructure:"debug_logging"`
}

const (
	DefaultSlippageBps    = 500
	DefaultRequestTimeout = 30
	DefaultMaxRetries     = 3
)

// Load reads configuration from path, with PUMPFUN_* environment variables
// taking precedence over file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("slippage_bps", DefaultSlippageBps)
	v.SetDefault("request_timeout_seconds", DefaultRequestTimeout)
	v.SetDefault("max_retries", DefaultMaxRetries)
	v.SetDefault("log_file", "pumpfun.log")

	v.SetEnvPrefix("PUMPFUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, validate(&cfg)
}

func validate(cfg *Config) error {
	if cfg.RPCURL == "" {
		return errors.New("missing rpc_url in configuration")
	}
	parsed, err := url.Parse(cfg.RPCURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("rpc_url must be an http(s) URL")
	}
	if cfg.PrivateKey == "" {
		return errors.New("missing private_key in configuration")
	}
	if cfg.SlippageBps > 10_000 {
		return errors.New("slippage_bps must not exceed 10000")
	}
	if cfg.MaxRetries < 1 {
		return errors.New("max_retries must be at least 1")
	}
	return nil
}
