package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SEED_DATA", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.StorageDriver != StorageSQLite {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour || !cfg.SeedData {
		t.Fatalf("unexpected session defaults: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors defaults: %v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("expected lower-cased driver, got %q", cfg.StorageDriver)
	}
	if cfg.SessionTTL != 90*time.Minute || cfg.SeedData {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "8080",
			StorageDriver:   StorageSQLite,
			SQLitePath:      ":memory:",
			SessionSecret:   "0123456789abcdef",
			SessionTTL:      time.Hour,
			ShutdownTimeout: time.Second,
			AMQPExchange:    "budget.events",
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(c *Config){
		"port":          func(c *Config) { c.Port = "http" },
		"port range":    func(c *Config) { c.Port = "70000" },
		"driver":        func(c *Config) { c.StorageDriver = "mongo" },
		"postgres dsn":  func(c *Config) { c.StorageDriver = StoragePostgres },
		"secret":        func(c *Config) { c.SessionSecret = "short" },
		"ttl":           func(c *Config) { c.SessionTTL = 0 },
		"bcrypt cost":   func(c *Config) { c.BcryptCost = 2 },
		"amqp scheme":   func(c *Config) { c.AMQPURL = "http://broker" },
		"amqp exchange": func(c *Config) { c.AMQPURL = "amqp://broker"; c.AMQPExchange = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	dev := valid()
	dev.SessionSecret = ""
	dev.Environment = "development"
	if err := dev.Validate(); err != nil {
		t.Fatalf("development allows an empty secret: %v", err)
	}

	broken := valid()
	broken.Port = "x"
	broken.SessionTTL = 0
	err := broken.Validate()
	if err == nil || !strings.Contains(err.Error(), "SESSION_TTL") || !strings.Contains(err.Error(), "invalid port") {
		t.Fatalf("expected every problem reported, got %v", err)
	}
}
