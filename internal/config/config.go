package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// URL selects the relational backend when non-empty. Usually injected
	// via the POSTGRES_URL environment variable.
	URL     string `mapstructure:"url"`
	LogMode bool   `mapstructure:"log_mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// A missing config file is not an error: defaults plus environment
// variables are enough to run, which matters on platforms where only env
// vars exist.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		appConfig, err = load(path)
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.url", "")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// environment overrides, e.g. EQUIP_SERVER_PORT=9000
	v.SetEnvPrefix("EQUIP")
	v.AutomaticEnv()
	// the hosting platform hands us the connection string under this name
	_ = v.BindEnv("database.url", "POSTGRES_URL")

	if err := v.ReadInConfig(); err != nil {
		// an absent file surfaces as ConfigFileNotFoundError from the
		// search form but as a bare PathError from SetConfigFile; both mean
		// "run on defaults and env"
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
