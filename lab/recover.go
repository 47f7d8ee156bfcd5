package lab

import "github.com/cockroachdb/errors"

// Recovered runs a bounded computation and converts an abnormal
// termination (panic) into an error, letting the caller substitute a
// fallback value instead of aborting the process.
//
//	v, err := lab.Recovered(func() int { return xs[i] })
//	if err != nil {
//		v = 0 // fallback
//	}
func Recovered[T any](f func() T) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = errors.Newf("recovered: %v", r)
		}
	}()
	return f(), nil
}
