package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. QUIZZY_SERVER_ADDR for server.addr.
const EnvPrefix = "QUIZZY"

// Config is the resolved configuration for all commands.
type Config struct {
	// Catalog is an optional path to a YAML or JSON catalog. Empty means
	// the built-in catalog.
	Catalog string
	Log     LoggerConfig
	Server  ServerConfig
}

type LoggerConfig struct {
	Level string // debug, info, warn, error
	Env   string // development or production
	File  string
}

type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

var (
	validLevels = []string{"debug", "info", "warn", "error"}
	validEnvs   = []string{"development", "production"}
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")
	v.SetDefault("log.file", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
}

// Load reads the optional config file, applies environment overrides and
// returns the validated configuration. An explicit file set under the
// "config" key must exist; otherwise quizzy.yaml is searched for in the
// usual places and skipped when absent.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("quizzy")
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Catalog: v.GetString("catalog"),
		Log: LoggerConfig{
			Level: strings.ToLower(v.GetString("log.level")),
			Env:   strings.ToLower(v.GetString("log.env")),
			File:  v.GetString("log.file"),
		},
		Server: ServerConfig{
			Addr:         v.GetString("server.addr"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and durations.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("invalid log.level %q: want one of %s", c.Log.Level, strings.Join(validLevels, ", "))
	}
	if !slices.Contains(validEnvs, c.Log.Env) {
		return fmt.Errorf("invalid log.env %q: want one of %s", c.Log.Env, strings.Join(validEnvs, ", "))
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	return nil
}

func searchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "quizzy"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "quizzy"))
	}
	return paths
}
