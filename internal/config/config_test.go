package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfo(t *testing.T) {
	c := New(8080, "localhost", 30*time.Second)
	require.Equal(t, "info", c.DebugLevel())
}

func TestSetDebugLevel(t *testing.T) {
	c := New(8080, "localhost", 30*time.Second)

	require.NoError(t, c.SetDebugLevel("debug"))
	require.Equal(t, "debug", c.DebugLevel())

	// A bogus level fails and leaves the prior value unchanged.
	err := c.SetDebugLevel("bogus")
	require.True(t, errors.Is(err, ErrValidation))
	require.Equal(t, "debug", c.DebugLevel())

	for _, l := range DebugLevels {
		require.NoError(t, c.SetDebugLevel(l))
		require.Equal(t, l, c.DebugLevel())
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		in        string
		want      uint16
		wantClass error
	}{
		{"8080", 8080, nil},
		{"1", 1, nil},
		{"65535", 65535, nil},
		{"0", 0, ErrValidation},
		{"65536", 0, ErrValidation},
		{"99999", 0, ErrValidation},
		{"abc", 0, ErrParse},
		{"", 0, ErrParse},
		{"-1", 0, ErrParse},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ValidatePort(tc.in)
			if tc.wantClass == nil {
				require.NoError(t, err)
				require.Equal(t, tc.want, got)
				return
			}
			require.True(t, errors.Is(err, tc.wantClass), "got %v", err)
		})
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("123")
	require.NoError(t, err)
	require.Equal(t, int64(123), v)

	_, err = ParseInt("not_a_number")
	require.True(t, errors.Is(err, ErrParse))
}

func TestParseInts(t *testing.T) {
	vals, err := ParseInts([]string{"1", "2", "3"})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, vals)

	// Partial failure: valid values still come back, every bad input is
	// named in the combined error.
	vals, err = ParseInts([]string{"123", "junk", "456", "bogus"})
	require.Equal(t, []int64{123, 456}, vals)
	require.True(t, errors.Is(err, ErrParse))
	require.Contains(t, err.Error(), "junk")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := "port: 9090\nhost: example.com\ntimeout: 45\ndebug_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint16(9090), c.Port)
	require.Equal(t, "example.com", c.Host)
	require.Equal(t, 45*time.Second, c.Timeout)
	require.Equal(t, "warn", c.DebugLevel())
}

func TestLoadErrorClasses(t *testing.T) {
	dir := t.TempDir()

	t.Run("not found", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not closed"), 0o644))

		_, err := Load(path)
		require.True(t, errors.Is(err, ErrParse), "got %v", err)
	})

	t.Run("missing host", func(t *testing.T) {
		path := filepath.Join(dir, "nohost.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o644))

		_, err := Load(path)
		require.True(t, errors.Is(err, ErrValidation), "got %v", err)
	})

	t.Run("bad debug level", func(t *testing.T) {
		path := filepath.Join(dir, "badlevel.yaml")
		doc := "port: 8080\nhost: localhost\ndebug_level: shout\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		_, err := Load(path)
		require.True(t, errors.Is(err, ErrValidation), "got %v", err)
	})
}

func TestLoadOrDefault(t *testing.T) {
	c := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Equal(t, Default().Port, c.Port)
	require.Equal(t, Default().Host, c.Host)
	require.Equal(t, "info", c.DebugLevel())
}
