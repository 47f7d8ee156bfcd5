package config

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ParseInt converts s to an int64, marking failures as parse errors so
// callers can distinguish them from validation errors.
func ParseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "%q is not a number", s)
	}
	return v, nil
}

// ParseInts converts a batch of strings, collecting every valid value and
// reporting each failure individually. The values are returned even when
// some inputs fail; the combined error names every bad input.
func ParseInts(ss []string) ([]int64, error) {
	vals := make([]int64, 0, len(ss))
	var failed error
	for _, s := range ss {
		v, err := ParseInt(s)
		if err != nil {
			failed = errors.CombineErrors(failed, err)
			continue
		}
		vals = append(vals, v)
	}
	return vals, failed
}

// ValidatePort parses and validates a TCP port string.
//
// Non-numeric text is a parse failure; a numeric value of zero or above
// 65535 is a validation failure. The two classes are distinguishable with
// errors.Is(err, ErrParse) / errors.Is(err, ErrValidation).
func ValidatePort(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "%q is not a valid port number", s)
	}
	if v == 0 {
		return 0, errors.Wrapf(ErrValidation, "port cannot be 0")
	}
	if v > 65535 {
		return 0, errors.Wrapf(ErrValidation, "port %d exceeds 65535", v)
	}
	return uint16(v), nil
}
