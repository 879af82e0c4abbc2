package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	// Empty disables the document challenge source.
	MongoURI    string `env:"MONGO_URI"`
	MongoDB     string `env:"MONGO_DB" envDefault:"codecasino"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	AIHourlyLimit    int `env:"AI_HOURLY_LIMIT" envDefault:"100"`
	AITimeoutSeconds int `env:"AI_TIMEOUT_SECONDS" envDefault:"15"`

	WelcomePoints int64 `env:"WELCOME_POINTS" envDefault:"100"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
