package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	OpponentHuman = "human"
	OpponentBot   = "bot"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	FirstPlayer string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"X" validate:"oneof=X O x o"`
	Rematch     bool   `yaml:"rematch" env:"REMATCH" env-default:"false"`
	Bot         Bot    `yaml:"bot"`
	Redis       Redis  `yaml:"redis"`
}

// Bot describes the computer opponent. Mark is the side it plays when Opponent is "bot".
type Bot struct {
	Opponent   string `yaml:"opponent" env:"OPPONENT" env-default:"human" validate:"oneof=human bot"`
	Mark       string `yaml:"mark" env:"BOT_MARK" env-default:"O" validate:"oneof=X O x o"`
	Difficulty string `yaml:"difficulty" env:"BOT_DIFFICULTY" env-default:"hard" validate:"oneof=easy hard"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379" validate:"required_if=Enabled true"`
	Timeout time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s" validate:"gte=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadEnv - builds the config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) Enabled() bool {
	return that.Opponent == OpponentBot
}
