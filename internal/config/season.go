package config

import "github.com/caarlos0/env/v11"

type SeasonConfig struct {
	Players        int    `env:"SWINDLE_PLAYERS" envDefault:"50"`
	Weeks          int    `env:"SWINDLE_WEEKS" envDefault:"25"`
	BestN          int    `env:"SWINDLE_BEST_N" envDefault:"10"`
	UnitCost       int64  `env:"SWINDLE_UNIT_COST" envDefault:"5"`
	CurrencySymbol string `env:"SWINDLE_CURRENCY" envDefault:"£"`
}

func LoadSeason() (SeasonConfig, error) {
	var cfg SeasonConfig
	err := env.Parse(&cfg)
	return cfg, err
}
