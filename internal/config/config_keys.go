// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command (e.g., "history.limit").
//
// Pointers are used for optional fields so "not set" (nil) differs from
// "explicitly set to zero/false".

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
		"display.prefix", "display.numbers", "display.colour", "display.diff",
		"history.limit",
		"limits.max_line_length",
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
	case "display.prefix":
		return c.Prefix(), nil
	case "display.numbers":
		return strconv.FormatBool(c.Numbers()), nil
	case "display.colour":
		return strconv.FormatBool(c.Colour()), nil
	case "display.diff":
		return strconv.FormatBool(c.ShowDiff()), nil
	case "history.limit":
		return strconv.Itoa(c.HistoryLimit()), nil
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "display.prefix":
		if len(value) > MaxPrefixLength {
			return fmt.Errorf("%w: display.prefix must be at most %d bytes", ErrInvalidValue, MaxPrefixLength)
		}
		c.Display.Prefix = &value
	case "display.numbers":
		return setBool(&c.Display.Numbers, key, value)
	case "display.colour":
		return setBool(&c.Display.Colour, key, value)
	case "display.diff":
		return setBool(&c.Display.Diff, key, value)
	case "history.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinHistoryLimit || n > MaxHistoryLimit {
			return fmt.Errorf("%w: history.limit must be an integer between %d and %d", ErrInvalidValue, MinHistoryLimit, MaxHistoryLimit)
		}
		c.History.Limit = &n
	case "limits.max_line_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxLineLength || n > MaxMaxLineLength {
			return fmt.Errorf("%w: limits.max_line_length must be a positive integer up to %d", ErrInvalidValue, MaxMaxLineLength)
		}
		c.Limits.MaxLineLength = &n
	case "log.enabled":
		return setBool(&c.Log.Enabled, key, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func setBool(dst **bool, key, value string) error {
	v := strings.ToLower(value)
	if v != "true" && v != "false" {
		return fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	b := v == "true"
	*dst = &b
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		m[k] = v
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "display.prefix":
		return c.Display.Prefix != nil
	case "display.numbers":
		return c.Display.Numbers != nil
	case "display.colour":
		return c.Display.Colour != nil
	case "display.diff":
		return c.Display.Diff != nil
	case "history.limit":
		return c.History.Limit != nil
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
