package manager

import "errors"

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{ version string }

func (e tooBusyError) Error() string { return "too busy: " + e.version }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	var tb tooBusyError
	return errors.As(err, &tb)
}

// versionNotFoundError is returned when a requested key is not in the registry.
type versionNotFoundError struct{ version string }

func (e versionNotFoundError) Error() string { return "version not found: " + e.version }

// ErrVersionNotFound returns an error for a key missing from the registry.
func ErrVersionNotFound(version string) error { return versionNotFoundError{version: version} }

// IsVersionNotFound reports whether the error indicates an unknown version key.
func IsVersionNotFound(err error) bool {
	var nf versionNotFoundError
	return errors.As(err, &nf)
}

// dependencyUnavailableError signals that the engine build for a version could
// not be loaded, so the HTTP layer can return 503 instead of 500.
type dependencyUnavailableError struct {
	msg   string
	cause error
}

func (e dependencyUnavailableError) Error() string { return e.msg }

func (e dependencyUnavailableError) Unwrap() error { return e.cause }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string, cause error) error {
	return dependencyUnavailableError{msg: msg, cause: cause}
}

// IsDependencyUnavailable reports whether err indicates a missing/failed engine build.
func IsDependencyUnavailable(err error) bool {
	var du dependencyUnavailableError
	return errors.As(err, &du)
}
