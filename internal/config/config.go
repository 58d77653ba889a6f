package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	LogFile  string `yaml:"log-file" env-default:"tictactoe.log"`
	Storage  string `yaml:"storage" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env-default:"localhost"`
	Port       string        `yaml:"port" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env-default:"24h"`
}

type Game struct {
	HumanMark     string        `yaml:"human-mark" env-default:"X"`
	MovesFirst    string        `yaml:"moves-first" env-default:"human"`
	ComputerDelay time.Duration `yaml:"computer-delay" env-default:"300ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Settings converts the configured defaults into game settings.
func (that *Game) Settings() (entity.Settings, error) {
	mark, err := entity.ParseMark(that.HumanMark)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid human-mark: %w", err)
	}

	settings := entity.Settings{
		HumanMark:  mark,
		MovesFirst: entity.Side(that.MovesFirst),
	}

	if err = settings.Validate(); err != nil {
		return entity.Settings{}, err
	}

	return settings, nil
}
