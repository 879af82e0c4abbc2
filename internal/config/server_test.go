package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/casino?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.AIHourlyLimit != 100 {
		t.Fatalf("AIHourlyLimit = %d, want 100", cfg.AIHourlyLimit)
	}
	if cfg.WelcomePoints != 100 {
		t.Fatalf("WelcomePoints = %d, want 100", cfg.WelcomePoints)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("OpenAIModel = %q, want gpt-4o-mini", cfg.OpenAIModel)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/casino?sslmode=disable")
	t.Setenv("AI_HOURLY_LIMIT", "25")
	t.Setenv("AI_TIMEOUT_SECONDS", "5")
	t.Setenv("WELCOME_POINTS", "250")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.AIHourlyLimit != 25 {
		t.Fatalf("AIHourlyLimit = %d, want 25", cfg.AIHourlyLimit)
	}
	if cfg.AITimeoutSeconds != 5 {
		t.Fatalf("AITimeoutSeconds = %d, want 5", cfg.AITimeoutSeconds)
	}
	if cfg.WelcomePoints != 250 {
		t.Fatalf("WelcomePoints = %d, want 250", cfg.WelcomePoints)
	}
}
