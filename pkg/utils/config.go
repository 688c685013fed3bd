package utils

import (
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config is a thread-safe set of string settings, usually snapshotted from the
// environment, with typed accessors that fall back to defaults
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a Config holding a copy of values
func NewConfig(values map[string]string) *Config {
	config := &Config{
		values: make(map[string]string, len(values)),
	}

	maps.Copy(config.values, values)

	return config
}

// NewConfigFromEnv loads the given .env files into the environment and
// snapshots the result
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// lookup returns the raw value and whether it is set to something non-empty
func (c *Config) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, exists := c.values[key]
	return value, exists && value != ""
}

// Get retrieves a value, or the empty string when the key is unset
func (c *Config) Get(key string) string {
	value, _ := c.lookup(key)
	return value
}

// GetWithDefault retrieves a value, falling back when the key is unset or empty
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	return defaultValue
}

// GetBoolWithDefault parses a boolean value. Besides strconv.ParseBool it
// understands yes/no, on/off and enabled/disabled.
func (c *Config) GetBoolWithDefault(key string, defaultValue bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed
	}

	switch strings.ToLower(value) {
	case "yes", "on", "enabled":
		return true
	case "no", "off", "disabled":
		return false
	default:
		return defaultValue
	}
}

// GetIntWithDefault parses an integer value, falling back when unset or malformed
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDurationWithDefault parses a Go duration ("90s", "2h"), falling back when
// unset or malformed
func (c *Config) GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
