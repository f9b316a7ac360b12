package loader

import (
	"errors"
	"fmt"
)

// ErrPending is returned by Future.Result while the initialization runs.
var ErrPending = errors.New("initialization pending")

// loadFailedError wraps the cause of a failed initialization.
type loadFailedError struct {
	key   string
	cause error
}

func (e loadFailedError) Error() string {
	return fmt.Sprintf("load %s: %v", e.key, e.cause)
}

func (e loadFailedError) Unwrap() error { return e.cause }

// ErrLoadFailed wraps cause as the failure of initializing key.
func ErrLoadFailed(key string, cause error) error {
	return loadFailedError{key: key, cause: cause}
}

// IsLoadFailed reports whether err is (or wraps) an initialization failure.
func IsLoadFailed(err error) bool {
	var lf loadFailedError
	return errors.As(err, &lf)
}

// FailedKey returns the key of a wrapped initialization failure, if any.
func FailedKey(err error) (string, bool) {
	var lf loadFailedError
	if errors.As(err, &lf) {
		return lf.key, true
	}
	return "", false
}
