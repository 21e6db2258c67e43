package config

import "github.com/caarlos0/env/v11"

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"file"`
	Key     string `env:"STORE_KEY" envDefault:"pgaSwindleData"`

	// Autosave writes a snapshot after every accepted edit.
	Autosave bool `env:"STORE_AUTOSAVE" envDefault:"true"`

	Dir string `env:"STORE_DIR" envDefault:".swindle"`

	PostgresDSN string `env:"POSTGRES_DSN"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"swindle"`
}

func LoadStore() (StoreConfig, error) {
	var cfg StoreConfig
	err := env.Parse(&cfg)
	return cfg, err
}
