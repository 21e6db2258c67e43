package config

import "github.com/caarlos0/env/v11"

type TestConfig struct {
	TestPostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
}

func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	err := env.Parse(&cfg)
	return cfg, err
}

type MongoTestConfig struct {
	TestMongoURI string `env:"TEST_MONGO_URI,required,notEmpty"`
}

func LoadMongoTest() (MongoTestConfig, error) {
	var cfg MongoTestConfig
	err := env.Parse(&cfg)
	return cfg, err
}
