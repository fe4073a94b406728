package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Env           string   `env:"APP_ENV" envDefault:"development"`
	Port          string   `env:"PORT" envDefault:"3000"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	StorageDriver string   `env:"STORAGE_DRIVER" envDefault:"file"`
	DataFile      string   `env:"DATA_FILE" envDefault:"db.json"`
	DatabaseDSN   string   `env:"DATABASE_DSN"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envDefault:"http://localhost:4200"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
