package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/benz9527/xdsa/lib/infra"
)

const (
	configName = "xdsa"
	envPrefix  = "XDSA"
)

type config struct {
	Log     logConfig     `mapstructure:"log"`
	Maze    mazeConfig    `mapstructure:"maze"`
	Coins   coinsConfig   `mapstructure:"coins"`
	Metrics metricsConfig `mapstructure:"metrics"`
	Sweep   sweepConfig   `mapstructure:"sweep"`
}

type logConfig struct {
	Level   string `mapstructure:"level"`
	Encoder string `mapstructure:"encoder"`
}

type mazeConfig struct {
	// Dir confines the maze files, names are resolved beneath it.
	Dir       string `mapstructure:"dir"`
	Iterative bool   `mapstructure:"iterative"`
}

type coinsConfig struct {
	Denominations []int        `mapstructure:"denominations"`
	Store         string       `mapstructure:"store"`
	Redis         redisConfig  `mapstructure:"redis"`
	Sqlite        sqliteConfig `mapstructure:"sqlite"`
}

type redisConfig struct {
	Addr      string `mapstructure:"addr"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type sqliteConfig struct {
	DSN       string `mapstructure:"dsn"`
	Namespace string `mapstructure:"namespace"`
}

type metricsConfig struct {
	Exporter string `mapstructure:"exporter"`
}

type sweepConfig struct {
	Workers int `mapstructure:"workers"`
}

func newViper() *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix(envPrefix)
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vi.AutomaticEnv()

	vi.SetDefault("log.level", "warn")
	vi.SetDefault("log.encoder", "text")

	vi.SetDefault("maze.dir", ".")
	vi.SetDefault("maze.iterative", false)

	vi.SetDefault("coins.denominations", []int{1, 5, 10, 25})
	vi.SetDefault("coins.store", "map")
	vi.SetDefault("coins.redis.addr", "127.0.0.1:6379")
	vi.SetDefault("coins.redis.key_prefix", "xdsa:coins:memo")
	vi.SetDefault("coins.sqlite.dsn", "xdsa-memo.db")
	vi.SetDefault("coins.sqlite.namespace", "default")

	vi.SetDefault("metrics.exporter", "none")
	vi.SetDefault("sweep.workers", 4)
	return vi
}

// readInConfig loads cfgFile, or xdsa.{yaml,json,toml} from the working
// directory when cfgFile is empty. A missing default file is not an error.
func readInConfig(vi *viper.Viper, cfgFile string) (*config, error) {
	if cfgFile != "" {
		vi.SetConfigFile(cfgFile)
	} else {
		vi.AddConfigPath(".")
		vi.SetConfigName(configName)
	}
	if err := vi.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, infra.WrapErrorStackWithMessage(err, "[config] read")
		}
	}

	cfg := &config{}
	if err := vi.Unmarshal(cfg); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[config] decode")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if len(c.Coins.Denominations) == 0 {
		return infra.NewErrorStack("[config] coins.denominations is empty")
	}
	if c.Sweep.Workers < 1 {
		return infra.NewErrorStack(fmt.Sprintf("[config] sweep.workers %d", c.Sweep.Workers))
	}
	return nil
}
