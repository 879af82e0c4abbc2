package config

import "github.com/caarlos0/env/v11"

type TestConfig struct {
	TestPostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
	TestRedisAddr   string `env:"TEST_REDIS_ADDR"`
	TestMongoURI    string `env:"TEST_MONGO_URI"`
}

func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	err := env.Parse(&cfg)
	return cfg, err
}
