package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

type Config struct {
	Env         string         `env:"ENV" env-default:"dev"`
	DatabaseURL string         `env:"DATABASE_URL" env-required:"true"`
	Server      HTTPServer     `env-prefix:"SERVER_"`
	Holidays    HolidaysConfig `env-prefix:"HOLIDAYS_"`
	StaticDir   string         `env:"STATIC_DIR" env-default:"static"`
}

type HTTPServer struct {
	Port    string        `env:"PORT" env-default:"8080"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"5s"`
}

type HolidaysConfig struct {
	BaseURL string        `env:"BASE_URL" env-default:"https://date.nager.at/api/v3"`
	Timeout time.Duration `env:"TIMEOUT" env-default:"10s"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}
