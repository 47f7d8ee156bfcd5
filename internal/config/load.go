package config

import (
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fileConfig mirrors the on-disk YAML document. The timeout is expressed
// in whole seconds.
type fileConfig struct {
	Port       uint16 `yaml:"port" validate:"required"`
	Host       string `yaml:"host" validate:"required"`
	TimeoutSec uint64 `yaml:"timeout"`
	DebugLevel string `yaml:"debug_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Load reads and validates a YAML config file.
//
// Failures keep their class: not-found and permission errors from the
// filesystem stay testable with errors.Is(err, fs.ErrNotExist) and
// fs.ErrPermission, malformed YAML is marked ErrParse, and a well-formed
// document with out-of-range values is marked ErrValidation. Nothing is
// swallowed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(ErrParse, "config file %s is not valid YAML: %v", path, err)
	}
	if err := validate.Struct(&fc); err != nil {
		return nil, errors.Wrapf(ErrValidation, "config file %s: %v", path, err)
	}

	c := New(fc.Port, fc.Host, time.Duration(fc.TimeoutSec)*time.Second)
	if fc.DebugLevel != "" {
		if err := c.SetDebugLevel(fc.DebugLevel); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadOrDefault loads path, recovering locally from any failure with the
// default configuration. The failure is logged, never ignored silently.
func LoadOrDefault(path string, log *slog.Logger) *Config {
	c, err := Load(path)
	if err != nil {
		if log == nil {
			log = slog.Default()
		}
		reason := "unreadable"
		switch {
		case errors.Is(err, fs.ErrNotExist):
			reason = "not found"
		case errors.Is(err, ErrParse):
			reason = "malformed"
		case errors.Is(err, ErrValidation):
			reason = "invalid"
		}
		log.Warn("using default config",
			"path", path, "reason", reason, "err", err)
		return Default()
	}
	return c
}
