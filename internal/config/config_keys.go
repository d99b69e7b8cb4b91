// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command (e.g., "output.format").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to false". Defaults only apply when the
// user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name",
		"output.format",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "output.format":
		return c.OutputFormat(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "output.format":
		v := strings.ToLower(value)
		if !slices.Contains(ValidFormats, v) {
			return fmt.Errorf("%w: output.format must be one of %v", ErrInvalidValue, ValidFormats)
		}
		c.Output.Format = v
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":   c.Author.Name,
		"output.format": c.OutputFormat(),
		"log.enabled":   strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "output.format":
		return c.Output.Format != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
