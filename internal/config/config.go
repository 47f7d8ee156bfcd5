// Package config implements the small server-configuration record used by
// the error handling demonstrations: a port, a host, a timeout, and a
// validated debug level.
//
// Every fallible operation returns a classified error. Parse failures
// (text not convertible) and validation failures (convertible but outside
// the allowed set or range) carry distinct markers so callers can branch
// with errors.Is; file loading surfaces not-found, permission and other
// I/O failures instead of swallowing them.
package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Error classes. Test with errors.Is.
var (
	// ErrParse marks text that could not be converted to the target type.
	ErrParse = errors.New("config: parse failure")

	// ErrValidation marks a value that converted but is outside the
	// allowed set or range.
	ErrValidation = errors.New("config: validation failure")
)

// DebugLevels is the full set of recognized debug levels, in order of
// verbosity.
var DebugLevels = []string{"trace", "debug", "info", "warn", "error"}

// Config describes a server endpoint. The debug level is kept private so
// the "always one of the recognized values" invariant holds from
// construction on.
type Config struct {
	Port    uint16
	Host    string
	Timeout time.Duration

	debugLevel string
}

// New returns a config with the debug level defaulted to "info".
func New(port uint16, host string, timeout time.Duration) *Config {
	return &Config{Port: port, Host: host, Timeout: timeout, debugLevel: "info"}
}

// Default returns the fallback configuration used when loading fails.
func Default() *Config {
	return New(8080, "localhost", 30*time.Second)
}

// SetDebugLevel sets the debug level if level is one of DebugLevels.
// An unrecognized level leaves the prior value unchanged and returns a
// validation error.
func (c *Config) SetDebugLevel(level string) error {
	for _, l := range DebugLevels {
		if level == l {
			c.debugLevel = level
			return nil
		}
	}
	return errors.Wrapf(ErrValidation,
		"invalid debug level %q (valid levels: %v)", level, DebugLevels)
}

// DebugLevel returns the current debug level. Always one of DebugLevels.
func (c *Config) DebugLevel() string {
	if c.debugLevel == "" {
		return "info"
	}
	return c.debugLevel
}
