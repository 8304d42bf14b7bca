// config_keys.go provides key-value access to configuration settings.
//
// The CLI and the MCP server address settings by dotted string keys
// (e.g. "limits.error_buffer"); config.go only deals with the YAML shape.
// Optional fields are pointers so "not set" stays distinct from an explicit
// zero or false, and defaults apply only to unset values.

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
		"author.name", "author.email",
		"limits.error_buffer",
		"checks.reject_nan",
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
	case "author.email":
		return c.Author.Email, nil
	case "limits.error_buffer":
		return strconv.Itoa(c.ErrorBuffer()), nil
	case "checks.reject_nan":
		return strconv.FormatBool(c.RejectNaN()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "limits.error_buffer":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: limits.error_buffer must be an integer", ErrInvalidValue)
		}
		prev := c.Limits.ErrorBuffer
		c.Limits.ErrorBuffer = &n
		if err := c.Validate(); err != nil {
			c.Limits.ErrorBuffer = prev
			return err
		}
	case "checks.reject_nan":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: checks.reject_nan must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Checks.RejectNaN = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":         c.Author.Name,
		"author.email":        c.Author.Email,
		"limits.error_buffer": strconv.Itoa(c.ErrorBuffer()),
		"checks.reject_nan":   strconv.FormatBool(c.RejectNaN()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "limits.error_buffer":
		return c.Limits.ErrorBuffer != nil
	case "checks.reject_nan":
		return c.Checks.RejectNaN != nil
	default:
		return false
	}
}
