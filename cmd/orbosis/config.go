package main

import (
	"fmt"

	"orbosis/pkg/types"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.APIBaseURL == "" {
		return nil, fmt.Errorf("set API_BASE_URL")
	}

	switch c.StoreDriver {
	case "memory", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q, expected memory, sqlite, or redis", c.StoreDriver)
	}

	if c.StoreDriver == "redis" && c.RedisAddr == "" {
		return nil, fmt.Errorf("set REDIS_ADDR when STORE_DRIVER is redis")
	}

	if c.RedirectDelaySec <= 0 {
		c.RedirectDelaySec = 5
	}

	return c, nil
}
