package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and the cross-field rules the tags cannot
// express.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Session.Backend == backendRedis && strings.TrimSpace(c.Session.Redis.Addr) == "" {
		return errors.New("invalid config: session.redis.addr is required for the redis backend")
	}

	return nil
}
