package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level"   env:"LOG_LEVEL"   env-default:"info"`
	HTTPPort   string  `yaml:"http-port"   env:"HTTP_PORT"   env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Engine     Engine  `yaml:"engine"`
	Console    Console `yaml:"console"`

	// AllowedOrigins - browser origins the game socket accepts besides its own host.
	AllowedOrigins []string `yaml:"allowed-origins" env:"ALLOWED_ORIGINS" env-separator:","`
}

type Redis struct {
	Host       string        `yaml:"host"        env:"REDIS_HOST"        env-default:"localhost"`
	Port       string        `yaml:"port"        env:"REDIS_PORT"        env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"1h"`
}

// Engine - move selection options.
type Engine struct {
	Heuristics bool `yaml:"heuristics" env:"ENGINE_HEURISTICS" env-default:"true"`
	Workers    int  `yaml:"workers"    env:"ENGINE_WORKERS"    env-default:"1"`
}

// Console - options of the terminal game.
type Console struct {
	HumanMark   string `yaml:"human-mark"  env:"CONSOLE_HUMAN_MARK"  env-default:"X"`
	Suggestions bool   `yaml:"suggestions" env:"CONSOLE_SUGGESTIONS" env-default:"true"`
	Color       bool   `yaml:"color"       env:"CONSOLE_COLOR"       env-default:"true"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
