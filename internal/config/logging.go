package config

import "github.com/caarlos0/env/v11"

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	// Caller adds file:line to every entry.
	Caller bool `env:"LOG_CALLER" envDefault:"false"`
	// Service is stamped on every entry so shared log files stay separable.
	Service string `env:"LOG_SERVICE" envDefault:"swindle"`

	File  string `env:"LOG_FILE"`
	MaxMB int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
